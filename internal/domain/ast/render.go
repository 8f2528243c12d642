package ast

import (
	"fmt"
	"strings"
)

// Render returns an indented one-node-per-line view of the tree, the
// format printed by `pyast parse`.
//
//	Module
//	  body: Expr @1:0
//	    value: Constant(value=1) @1:0
func (n *Node) Render() string {
	var sb strings.Builder
	n.render(&sb, 0)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if n.Edge != "" {
		sb.WriteString(n.Edge)
		sb.WriteString(": ")
	}
	sb.WriteString(n.Kind)
	if len(n.Attrs) > 0 {
		parts := make([]string, 0, len(n.Attrs))
		for _, a := range n.Attrs {
			parts = append(parts, a.Name+"="+a.Value)
		}
		sb.WriteString("(" + strings.Join(parts, ", ") + ")")
	}
	// Module carries no location in CPython; skip the zero span.
	if n.Line > 0 {
		fmt.Fprintf(sb, " @%d:%d", n.Line, n.Col)
	}
	sb.WriteByte('\n')
	for _, c := range n.Children {
		c.render(sb, depth+1)
	}
}
