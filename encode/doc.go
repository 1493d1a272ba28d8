// Package encode encodes IR nodes to OTML text.
//
// # Usage
//
//	// Encode to a writer
//	err := encode.Encode(root, os.Stdout)
//
//	// Encode with options
//	err := encode.Encode(root, w, encode.Indent(4))
//
//	// Encode to a string
//	s, err := encode.String(root)
//
// Output is canonical: indentation is recomputed from tree structure
// (parent render depth + 1, starting at 0 for the root's children),
// so a tree assembled with irregular or synthetic stored depths still
// renders well formed.
//
// # Related Packages
//
//   - github.com/otml-format/go-otml/ir - IR representation
//   - github.com/otml-format/go-otml/parse - Parse text to IR
package encode
