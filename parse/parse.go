package parse

import (
	"fmt"
	"strings"

	"github.com/otml-format/go-otml/ir"
)

// CommentMarker starts a comment line after indentation.
const CommentMarker = "//"

// Parse converts OTML text into a document tree. It is total: every
// input, however malformed, yields a tree. Worst case the result is a
// degenerate tree with everything at depth 0, which is still
// renderable by interactive tooling.
//
// Depth is leadingWhitespace/indentSize with floor division. A line
// whose indentation is not an exact multiple rounds down silently;
// the Diagnostics option records these lines without failing.
func Parse(d []byte, opts ...ParseOption) *ir.Node {
	pOpts := &parseOpts{indent: DefaultIndent}
	for _, f := range opts {
		f(pOpts)
	}

	root := ir.Root()
	stack := []*ir.Node{root}
	for i, raw := range strings.Split(string(d), "\n") {
		raw = strings.TrimRight(raw, "\r")
		stripped := strings.TrimLeft(raw, " \t")
		if strings.TrimSpace(stripped) == "" {
			continue
		}
		lead := len(raw) - len(stripped)
		depth := lead / pOpts.indent
		if pOpts.diags != nil && lead%pOpts.indent != 0 {
			*pOpts.diags = append(*pOpts.diags, Diagnostic{
				Line:   i + 1,
				Column: lead + 1,
				Msg: fmt.Sprintf("indentation of %d is not a multiple of %d; nesting at depth %d",
					lead, pOpts.indent, depth),
			})
		}

		// equal depth pops too: a sibling attaches to the same
		// still-open ancestor, not to the previous line
		for len(stack) > 0 && depth <= stack[len(stack)-1].Depth {
			stack = stack[:len(stack)-1]
		}

		node := classify(stripped).WithDepth(depth)
		stack[len(stack)-1].Append(node)
		stack = append(stack, node)
		if pOpts.positions != nil {
			pOpts.positions[node] = i + 1
		}
	}
	return root
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) *ir.Node {
	return Parse([]byte(s), opts...)
}

func classify(stripped string) *ir.Node {
	if strings.HasPrefix(stripped, CommentMarker) {
		return ir.Comment(strings.TrimSpace(stripped[len(CommentMarker):]))
	}
	if tag, val, ok := strings.Cut(stripped, ":"); ok {
		return ir.Data(strings.TrimSpace(tag), strings.TrimSpace(val))
	}
	return ir.Data(strings.TrimSpace(stripped), "")
}
