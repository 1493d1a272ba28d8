package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/otml-format/go-otml/encode"
	"github.com/otml-format/go-otml/ir"
)

type parseTest struct {
	name    string
	in      string
	opts    []ParseOption
	encOpts []encode.EncodeOption
	// canonical rendering of the parsed tree
	want string
}

func TestParseCanonical(t *testing.T) {
	pts := []parseTest{
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "blank lines only",
			in:   "\n\n   \n\t\n",
			want: "",
		},
		{
			name: "flat",
			in:   "MainWindow\n",
			want: "MainWindow\n",
		},
		{
			name: "tag value",
			in:   "size: 200 120\n",
			want: "size: 200 120\n",
		},
		{
			name: "value whitespace trimmed",
			in:   "size:    200 120   \n",
			want: "size: 200 120\n",
		},
		{
			name: "nested",
			in:   "MainWindow\n  size: 200 120\n  Panel\n    id: p1\n",
			want: "MainWindow\n  size: 200 120\n  Panel\n    id: p1\n",
		},
		{
			name: "blank lines dropped",
			in:   "a\n\n  b: 1\n\n\n  c: 2\n",
			want: "a\n  b: 1\n  c: 2\n",
		},
		{
			name: "comment line",
			in:   "// top note\npanel\n",
			want: "// top note\npanel\n",
		},
		{
			name: "comment body trimmed",
			in:   "//   spaced out   \n",
			want: "// spaced out\n",
		},
		{
			name: "value keeps inner colons",
			in:   "anchors.top: parent.top: x\n",
			want: "anchors.top: parent.top: x\n",
		},
		{
			name: "floor depth rounds down",
			in:   "a\n  b: 1\n   c: 2\n",
			// 3 spaces / 2 = depth 1: c is b's sibling, not child
			want: "a\n  b: 1\n  c: 2\n",
		},
		{
			name: "overindented first line",
			in:   "    a\nb\n",
			want: "a\nb\n",
		},
		{
			name:    "indent option",
			in:      "a\n    b: 1\n",
			opts:    []ParseOption{Indent(4)},
			encOpts: []encode.EncodeOption{encode.Indent(4)},
			want:    "a\n    b: 1\n",
		},
		{
			name: "crlf input",
			in:   "a\r\n  b: 1\r\n",
			want: "a\n  b: 1\n",
		},
	}
	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			root := ParseString(pt.in, pt.opts...)
			got := encode.MustString(root, pt.encOpts...)
			if got != pt.want {
				t.Errorf("canonical form %q, want %q", got, pt.want)
			}
		})
	}
}

func TestFloorDepthAttachment(t *testing.T) {
	root := ParseString("a\n  b: 1\n   c: 2\n")
	a := root.Children[0]
	if len(root.Children) != 1 || a.Tag != "a" {
		t.Fatalf("want single top node a, got %v", root.Children)
	}
	if len(a.Children) != 2 {
		t.Fatalf("b and c must both be children of a, got %d children", len(a.Children))
	}
	b, c := a.Children[0], a.Children[1]
	if b.Tag != "b" || c.Tag != "c" {
		t.Fatalf("got %q, %q", b.Tag, c.Tag)
	}
	if len(b.Children) != 0 {
		t.Fatal("c attached as child of b; floor division requires sibling")
	}
	if b.Depth != 1 || c.Depth != 1 {
		t.Fatalf("b, c depths = %d, %d, want 1, 1", b.Depth, c.Depth)
	}
}

func TestCommentNesting(t *testing.T) {
	root := ParseString("panel\n  // note\n    child: x\n")
	panel := root.Children[0]
	if len(panel.Children) != 1 {
		t.Fatalf("panel children = %d, want 1", len(panel.Children))
	}
	note := panel.Children[0]
	if note.Kind != ir.CommentKind || note.Value != "note" {
		t.Fatalf("got %v %q", note.Kind, note.Value)
	}
	if len(note.Children) != 1 || note.Children[0].Tag != "child" {
		t.Fatal("deeper line after a comment must nest under the comment")
	}
}

func TestSiblingEqualDepthPop(t *testing.T) {
	root := ParseString("win\n  a: 1\n  b: 2\n")
	win := root.Children[0]
	var tags []string
	for _, c := range win.Children {
		tags = append(tags, c.Tag)
	}
	if diff := cmp.Diff([]string{"a", "b"}, tags); diff != "" {
		t.Fatalf("equal-depth lines must be siblings under win (-want +got):\n%s", diff)
	}
	if len(win.Children[0].Children) != 0 {
		t.Fatal("a must not adopt b")
	}
}

func TestRoundTripTreeEquality(t *testing.T) {
	inputs := []string{
		"MainWindow\n  size: 200 120\n  // note\n    nested: yes\n  Panel\n",
		"a\nb\nc\n",
		"x: 1\n\n\n  y\n   z: w\n",
		"",
	}
	for _, in := range inputs {
		first := ParseString(in)
		second := ParseString(encode.MustString(first))
		if !ir.Equal(first, second) {
			t.Errorf("round trip changed tree for %q:\nfirst:\n%ssecond:\n%s",
				in, encode.MustString(first), encode.MustString(second))
		}
	}
}

func TestDiagnostics(t *testing.T) {
	var diags []Diagnostic
	ParseString("a\n  b: 1\n   c: 2\n d: 3\n", Diagnostics(&diags))
	if len(diags) != 2 {
		t.Fatalf("diagnostics = %v, want 2 entries", diags)
	}
	if diags[0].Line != 3 || diags[1].Line != 4 {
		t.Fatalf("diagnostic lines = %d, %d, want 3, 4", diags[0].Line, diags[1].Line)
	}
}

func TestPositions(t *testing.T) {
	m := map[*ir.Node]int{}
	root := ParseString("a\n\n  b: 1\n", Positions(m))
	a := root.Children[0]
	b := a.Children[0]
	if m[a] != 1 || m[b] != 3 {
		t.Fatalf("positions a=%d b=%d, want 1 and 3", m[a], m[b])
	}
}
