package encode

import (
	"io"
	"strings"

	"github.com/otml-format/go-otml/ir"
)

type EncState struct {
	indent int
	colors *Colors
}

// Encode writes the canonical OTML rendering of the tree rooted at
// node to w. A RootKind node is never rendered itself, only its
// descendants. Render depth is recomputed per node from tree shape;
// the stored Depth field is ignored. Output has one trailing newline
// if any line was produced, and is empty for an empty tree.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: DefaultIndent}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return nil
	}
	if node.Kind == ir.RootKind {
		return encodeChildren(node, 0, w, es)
	}
	return encode(node, 0, w, es)
}

// String returns the canonical OTML rendering of the tree.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := &strings.Builder{}
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func encodeChildren(node *ir.Node, depth int, w io.Writer, es *EncState) error {
	for _, c := range node.Children {
		if err := encode(c, depth, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encode(node *ir.Node, depth int, w io.Writer, es *EncState) error {
	switch node.Kind {
	case ir.RootKind:
		// a root below the top renders as if transparent
		return encodeChildren(node, depth, w, es)
	case ir.CommentKind:
		if err := writeLine(w, es, depth, commentLine(node, es)); err != nil {
			return err
		}
	case ir.DataKind:
		if err := writeLine(w, es, depth, dataLine(node, es)); err != nil {
			return err
		}
	}
	return encodeChildren(node, depth+1, w, es)
}

func commentLine(node *ir.Node, es *EncState) string {
	ln := "// " + node.Value
	if es.colors != nil {
		ln = paint(es.colors.Comment, ln)
	}
	return ln
}

func dataLine(node *ir.Node, es *EncState) string {
	tag, sep, val := node.Tag, ": ", node.Value
	if es.colors != nil {
		tag = paint(es.colors.Tag, tag)
		sep = paint(es.colors.Sep, sep)
		val = paint(es.colors.Value, val)
	}
	if node.Value == "" {
		return tag
	}
	return tag + sep + val
}

// paint applies a sprintf-style color function to literal text.
func paint(f func(format string, a ...any) string, s string) string {
	if f == nil {
		return s
	}
	return f("%s", s)
}

func writeLine(w io.Writer, es *EncState, depth int, ln string) error {
	indent := strings.Repeat(" ", es.indent*depth)
	_, err := io.WriteString(w, indent+ln+"\n")
	return err
}
