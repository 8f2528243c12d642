// Package pyparser embeds the external parser: a python3 entry script and
// the proto schema its binary output conforms to. Standalone package with
// no imports to avoid circular dependencies.
//
// Usage:
//
//	bridge.Materialize(pyparser.FS, paths)
package pyparser

import "embed"

// ScriptName is the parser entry script, invoked as
// `python3 parse_ast.py [schema source output]`.
const ScriptName = "parse_ast.py"

// SchemaName is the proto3 definition of the AST message. The same file
// is handed to the script and compiled in-process for decoding, so the
// two sides cannot drift.
const SchemaName = "ast.proto"

//go:embed parse_ast.py ast.proto
var FS embed.FS
