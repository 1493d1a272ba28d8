package assets

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/otml-format/go-otml/parse"
)

func TestImageSources(t *testing.T) {
	root := parse.ParseString(`MainWindow
  Button
    IMAGE-SOURCE: 'icons/play.png'
    text: not me
  Button
    image-source: "icons/stop.png"
  // image-source: comment lines never count
  image-source:
  Panel
    image-source: /ui/back.png
`)
	got := ImageSources(root)
	want := []string{"icons/play.png", "icons/stop.png", "/ui/back.png"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("image sources (-want +got):\n%s", diff)
	}
}

func TestStripQuotes(t *testing.T) {
	cases := map[string]string{
		`'x'`:     "x",
		`"x"`:     "x",
		`"'x'"`:   "x",
		`'x"`:     `'x"`,
		`x`:       "x",
		`''`:      "",
		`'`:       "'",
		`"a" "b"`: `a" "b`,
		`'it's'`:  "it's",
	}
	for in, want := range cases {
		if got := stripQuotes(in); got != want {
			t.Errorf("stripQuotes(%q) = %q, want %q", in, got, want)
		}
	}
}
