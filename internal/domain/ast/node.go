// Package ast defines the decoded syntax tree returned by a parse.
// Nodes mirror the python ast module's shape: one Node per ast object,
// scalar fields flattened into Attrs, child nodes kept in source order.
package ast

// Attr is a scalar field of a node, stringified by the parser script.
// e.g. {Name: "id", Value: "x"} on a Name node.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Node is one node of the parsed tree. The root of a parsed file is
// always kind "Module". Positions are 1-based lines and 0-based columns,
// matching CPython's ast location convention; nodes without location
// info (e.g. Module itself) carry zeros.
type Node struct {
	// Kind is the python ast class name: "Module", "FunctionDef", "Pass".
	Kind string `json:"kind"`
	// Edge is the field name on the parent ("body", "targets"); empty on the root.
	Edge string `json:"edge,omitempty"`

	Line    uint32 `json:"line,omitempty"`
	Col     uint32 `json:"col,omitempty"`
	EndLine uint32 `json:"end_line,omitempty"`
	EndCol  uint32 `json:"end_col,omitempty"`

	Attrs    []Attr  `json:"attrs,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Attr returns the value of the named scalar field, or "" if absent.
func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Count returns the total number of nodes in the subtree rooted at n,
// including n itself.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Walk calls fn for every node in depth-first pre-order. Returning false
// from fn prunes that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
