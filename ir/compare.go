package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// The Depth field is ignored: two trees that differ only in stored
// depths compare equal, which is the equality of the round-trip law
// (output indentation is recomputed by the encoder anyway).
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind != b.Kind {
		return cmp.Compare(rank(a.Kind), rank(b.Kind))
	}
	if c := strings.Compare(a.Tag, b.Tag); c != 0 {
		return c
	}
	if c := strings.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	return compareChildren(a, b)
}

// Equal reports whether a and b are structurally equal
// (kind, tag, value and children; depth ignored).
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a kind.
// Order: Root < Comment < Data.
func rank(k Kind) int {
	switch k {
	case RootKind:
		return 0
	case CommentKind:
		return 1
	case DataKind:
		return 2
	}
	return 3
}

func compareChildren(a, b *Node) int {
	n := min(len(a.Children), len(b.Children))
	for i := range n {
		if c := Compare(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Children), len(b.Children))
}
