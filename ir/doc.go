// Package ir provides the intermediate representation (IR) for OTML documents.
//
// # Overview
//
// An OTML document is a tree of nodes, one node per non-blank source
// line. The IR is the common shape shared by the parser, the encoder
// and the asset resolution subsystem: whether a tree was parsed from
// text or built programmatically, it is represented the same way.
//
// # Node Structure
//
// A Node is a tagged union over three kinds:
//
//   - RootKind: the synthetic document root, depth -1, exactly one per
//     tree, never rendered itself
//   - DataKind: a `tag: value` or bare `tag` line
//   - CommentKind: a `// ...` line; its body is stored in Value
//
// Comments participate fully in the indentation tree: a comment
// followed by more deeply indented lines is their parent, exactly like
// a data node.
//
// The Depth field records the nesting level computed from source
// indentation. It is informational: structural equality and encoding
// ignore it, so trees assembled with arbitrary depths still render
// with consistent indentation.
//
// # Creating Nodes
//
//	root := ir.Root()
//	panel := root.Append(ir.Data("MainWindow", ""))
//	panel.Append(ir.Data("size", "200 120"))
//	panel.Append(ir.Comment("anchors follow the parent"))
//
// # Thread Safety
//
// Trees returned by the parser are never mutated in place by this
// module, so a tree may be read concurrently from multiple
// goroutines. Mutating a tree is the caller's concern and requires
// external synchronization or a Clone per writer.
package ir
