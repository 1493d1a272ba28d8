package assets

import (
	"strings"

	"github.com/otml-format/go-otml/ir"
)

// SourceTag is the node tag whose values are image references,
// matched case-insensitively.
const SourceTag = "image-source"

// ImageSources collects the image reference values of the tree in
// pre-order, stripped of surrounding whitespace and quotes.
func ImageSources(root *ir.Node) []string {
	var found []string
	root.Walk(func(n *ir.Node) {
		if n.Kind != ir.DataKind {
			return
		}
		if !strings.EqualFold(n.Tag, SourceTag) {
			return
		}
		if v := stripQuotes(strings.TrimSpace(n.Value)); v != "" {
			found = append(found, v)
		}
	})
	return found
}

// stripQuotes removes matched single or double quotes, repeatedly, so
// `"'x'"` unwraps all the way.
func stripQuotes(v string) string {
	for len(v) >= 2 {
		q := v[0]
		if (q != '\'' && q != '"') || v[len(v)-1] != q {
			break
		}
		v = v[1 : len(v)-1]
	}
	return v
}
