// Package otml is the high-level surface for working with OTML, the
// whitespace-indented `tag: value` markup used to describe UI
// layouts. It wraps the parse and encode packages for callers that
// want text-to-text operations; tooling that needs the tree works
// with those packages and ir directly.
package otml

import (
	"github.com/otml-format/go-otml/encode"
	"github.com/otml-format/go-otml/ir"
	"github.com/otml-format/go-otml/parse"
)

// Parse parses OTML text. It never fails; see parse.Parse.
func Parse(d []byte, opts ...parse.ParseOption) *ir.Node {
	return parse.Parse(d, opts...)
}

// ParseString parses OTML text from a string.
func ParseString(s string, opts ...parse.ParseOption) *ir.Node {
	return parse.ParseString(s, opts...)
}

// Encode renders a tree in canonical form.
func Encode(root *ir.Node, opts ...encode.EncodeOption) (string, error) {
	return encode.String(root, opts...)
}

// Canonical rewrites OTML text in canonical form: blank lines
// dropped, indentation normalized to the default width. It is
// idempotent for well-formed trees.
func Canonical(d []byte) string {
	return encode.MustString(parse.Parse(d))
}

// Equal reports whether two OTML texts describe the same tree,
// ignoring blank lines and indentation irregularities.
func Equal(a, b []byte) bool {
	return ir.Equal(parse.Parse(a), parse.Parse(b))
}
