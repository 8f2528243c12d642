// Package protoschema decodes the parser's binary output. The codec
// compiles ast.proto at load time with protocompile and unmarshals
// payloads dynamically, so the decoder always matches whatever schema
// file was handed to the parser script — there is no generated code to
// fall out of sync.
package protoschema

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/corey/pyast/internal/domain/ast"
)

// nodeMessage is the name of the root message in ast.proto.
const nodeMessage = "Node"

// Codec converts between ast.Node trees and their wire encoding.
// Immutable after Load; safe for concurrent use.
type Codec struct {
	node  protoreflect.MessageDescriptor
	attr  protoreflect.MessageDescriptor
	field nodeFields
}

// nodeFields caches the field descriptors looked up from the compiled
// schema. All lookups are verified once in Load so Decode never has to
// nil-check.
type nodeFields struct {
	kind      protoreflect.FieldDescriptor
	edge      protoreflect.FieldDescriptor
	line      protoreflect.FieldDescriptor
	col       protoreflect.FieldDescriptor
	endLine   protoreflect.FieldDescriptor
	endCol    protoreflect.FieldDescriptor
	attrs     protoreflect.FieldDescriptor
	children  protoreflect.FieldDescriptor
	attrName  protoreflect.FieldDescriptor
	attrValue protoreflect.FieldDescriptor
}

// Load compiles the schema file and resolves the Node message. A schema
// missing the expected messages or fields fails here, at construction,
// rather than mid-parse.
func Load(ctx context.Context, schemaPath string) (*Codec, error) {
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: []string{filepath.Dir(schemaPath)},
		}),
	}
	files, err := compiler.Compile(ctx, filepath.Base(schemaPath))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", schemaPath, err)
	}

	node := files[0].Messages().ByName(nodeMessage)
	if node == nil {
		return nil, fmt.Errorf("schema %s does not define %s", schemaPath, nodeMessage)
	}

	c := &Codec{node: node}
	missing := c.resolveFields()
	if missing != "" {
		return nil, fmt.Errorf("schema %s: message missing field %q", schemaPath, missing)
	}
	return c, nil
}

// resolveFields fills the descriptor cache and returns the name of the
// first missing field, or "".
func (c *Codec) resolveFields() string {
	fields := c.node.Fields()
	lookup := func(name string) protoreflect.FieldDescriptor {
		return fields.ByName(protoreflect.Name(name))
	}
	named := []struct {
		name string
		dst  *protoreflect.FieldDescriptor
	}{
		{"kind", &c.field.kind},
		{"edge", &c.field.edge},
		{"line", &c.field.line},
		{"col", &c.field.col},
		{"end_line", &c.field.endLine},
		{"end_col", &c.field.endCol},
		{"attrs", &c.field.attrs},
		{"children", &c.field.children},
	}
	for _, n := range named {
		if *n.dst = lookup(n.name); *n.dst == nil {
			return n.name
		}
	}

	c.attr = c.field.attrs.Message()
	if c.field.attrName = c.attr.Fields().ByName("name"); c.field.attrName == nil {
		return "attrs.name"
	}
	if c.field.attrValue = c.attr.Fields().ByName("value"); c.field.attrValue == nil {
		return "attrs.value"
	}
	return ""
}

// Decode unmarshals one Node payload. Malformed bytes, or bytes that
// decode to a node with no kind (version skew, empty file), fail with
// an error rather than producing a half-formed tree.
func (c *Codec) Decode(data []byte) (*ast.Node, error) {
	msg := dynamicpb.NewMessage(c.node)
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("decode ast payload: %w", err)
	}
	root := c.fromMessage(msg)
	if root.Kind == "" {
		return nil, fmt.Errorf("decode ast payload: root node has no kind")
	}
	return root, nil
}

func (c *Codec) fromMessage(msg protoreflect.Message) *ast.Node {
	f := &c.field
	n := &ast.Node{
		Kind:    msg.Get(f.kind).String(),
		Edge:    msg.Get(f.edge).String(),
		Line:    uint32(msg.Get(f.line).Uint()),
		Col:     uint32(msg.Get(f.col).Uint()),
		EndLine: uint32(msg.Get(f.endLine).Uint()),
		EndCol:  uint32(msg.Get(f.endCol).Uint()),
	}

	attrs := msg.Get(f.attrs).List()
	for i := 0; i < attrs.Len(); i++ {
		am := attrs.Get(i).Message()
		n.Attrs = append(n.Attrs, ast.Attr{
			Name:  am.Get(f.attrName).String(),
			Value: am.Get(f.attrValue).String(),
		})
	}

	children := msg.Get(f.children).List()
	for i := 0; i < children.Len(); i++ {
		n.Children = append(n.Children, c.fromMessage(children.Get(i).Message()))
	}
	return n
}

// Encode marshals a tree back to the wire format. The parse path never
// needs this; tests and fixture generation do.
func (c *Codec) Encode(n *ast.Node) ([]byte, error) {
	return proto.Marshal(c.toMessage(n))
}

func (c *Codec) toMessage(n *ast.Node) *dynamicpb.Message {
	f := &c.field
	msg := dynamicpb.NewMessage(c.node)
	setStr := func(fd protoreflect.FieldDescriptor, s string) {
		if s != "" {
			msg.Set(fd, protoreflect.ValueOfString(s))
		}
	}
	setUint := func(fd protoreflect.FieldDescriptor, v uint32) {
		if v != 0 {
			msg.Set(fd, protoreflect.ValueOfUint32(v))
		}
	}
	setStr(f.kind, n.Kind)
	setStr(f.edge, n.Edge)
	setUint(f.line, n.Line)
	setUint(f.col, n.Col)
	setUint(f.endLine, n.EndLine)
	setUint(f.endCol, n.EndCol)

	if len(n.Attrs) > 0 {
		list := msg.Mutable(f.attrs).List()
		for _, a := range n.Attrs {
			am := dynamicpb.NewMessage(c.attr)
			am.Set(f.attrName, protoreflect.ValueOfString(a.Name))
			am.Set(f.attrValue, protoreflect.ValueOfString(a.Value))
			list.Append(protoreflect.ValueOfMessage(am))
		}
	}
	if len(n.Children) > 0 {
		list := msg.Mutable(f.children).List()
		for _, child := range n.Children {
			list.Append(protoreflect.ValueOfMessage(c.toMessage(child)))
		}
	}
	return msg
}
