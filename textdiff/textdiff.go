// Package textdiff renders line diffs between a document and its
// canonical form.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines returns a line-oriented diff from from to to, one source line
// per output line prefixed with "- ", "+ " or "  ". Equal inputs
// yield the empty string.
func Lines(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lineArr := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineArr)

	b := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range splitLines(diff.Text) {
			b.WriteString(prefix)
			b.WriteString(ln)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Changed reports whether the two texts differ at all.
func Changed(from, to string) bool {
	return from != to
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
