package textdiff

import (
	"strings"
	"testing"
)

func TestLinesEqual(t *testing.T) {
	if d := Lines("a\nb\n", "a\nb\n"); d != "" {
		t.Fatalf("equal inputs produced diff %q", d)
	}
}

func TestLinesChanged(t *testing.T) {
	from := "a\n   b: 1\nc\n"
	to := "a\n  b: 1\nc\n"
	d := Lines(from, to)
	if !strings.Contains(d, "-    b: 1") {
		t.Fatalf("missing deletion in diff:\n%s", d)
	}
	if !strings.Contains(d, "+   b: 1") {
		t.Fatalf("missing insertion in diff:\n%s", d)
	}
	if !strings.Contains(d, "  a") || !strings.Contains(d, "  c") {
		t.Fatalf("context lines missing in diff:\n%s", d)
	}
}
