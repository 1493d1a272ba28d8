package parse

import (
	"fmt"

	"github.com/otml-format/go-otml/ir"
)

// DefaultIndent is the conventional OTML indent width.
const DefaultIndent = 2

// Diagnostic reports a tolerated irregularity in the input. It is
// advisory: the parser still produced a tree.
type Diagnostic struct {
	Line   int // 1-based
	Column int // 1-based
	Msg    string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Msg)
}

type parseOpts struct {
	indent    int
	diags     *[]Diagnostic
	positions map[*ir.Node]int
}

type ParseOption func(*parseOpts)

// Indent sets the indent width used for depth computation. Values
// below 1 fall back to DefaultIndent so Parse stays total.
func Indent(n int) ParseOption {
	return func(o *parseOpts) {
		if n < 1 {
			n = DefaultIndent
		}
		o.indent = n
	}
}

// Diagnostics collects indentation irregularities into sink.
func Diagnostics(sink *[]Diagnostic) ParseOption {
	return func(o *parseOpts) { o.diags = sink }
}

// Positions records the 1-based source line of each parsed node.
// This allows consumers (diagnostics, reference listings) to point
// back into the input text.
func Positions(m map[*ir.Node]int) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
