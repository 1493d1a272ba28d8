package assets

import (
	"path/filepath"
	"testing"
)

func TestResolveExtensionInference(t *testing.T) {
	docDir := t.TempDir()
	base := filepath.Join(docDir, "images")
	writeFile(t, filepath.Join(base, "icons", "play.jpg"), "jpg")
	writeFile(t, filepath.Join(base, "icons", "play.png"), "png")

	got, ok := Resolve(OS(), base, docDir, "icons/play")
	if !ok {
		t.Fatal("resolution failed")
	}
	// .png precedes .jpg in the extension order
	if want := filepath.Join(base, "icons", "play.png"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveExplicitExtension(t *testing.T) {
	docDir := t.TempDir()
	base := filepath.Join(docDir, "images")
	writeFile(t, filepath.Join(base, "icons", "play.jpg"), "jpg")

	got, ok := Resolve(OS(), base, docDir, "icons/play.jpg")
	if !ok || got != filepath.Join(base, "icons", "play.jpg") {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestResolveQuotingAndWhitespace(t *testing.T) {
	docDir := t.TempDir()
	base := filepath.Join(docDir, "images")
	writeFile(t, filepath.Join(base, "x.png"), "png")

	plain, ok := Resolve(OS(), base, docDir, "x.png")
	if !ok {
		t.Fatal("plain resolution failed")
	}
	for _, raw := range []string{"  'x.png'  ", `"x.png"`, `"'x.png'"`, `\x.png`, "/x.png"} {
		got, ok := Resolve(OS(), base, docDir, raw)
		if !ok || got != plain {
			t.Fatalf("raw %q resolved to %q ok=%v, want %q", raw, got, ok, plain)
		}
	}
}

func TestResolveDocDirFallback(t *testing.T) {
	docDir := t.TempDir()
	writeFile(t, filepath.Join(docDir, "splash.png"), "png")

	got, ok := Resolve(OS(), "", docDir, "splash")
	if !ok || got != filepath.Join(docDir, "splash.png") {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestResolveBaseBeforeDocDir(t *testing.T) {
	docDir := t.TempDir()
	base := filepath.Join(docDir, "images")
	writeFile(t, filepath.Join(base, "logo.png"), "base copy")
	writeFile(t, filepath.Join(docDir, "logo.png"), "doc copy")

	got, ok := Resolve(OS(), base, docDir, "logo.png")
	if !ok || got != filepath.Join(base, "logo.png") {
		t.Fatalf("got %q ok=%v, want the imagesBase candidate first", got, ok)
	}
}

func TestResolveBasenameScanCaseInsensitive(t *testing.T) {
	docDir := t.TempDir()
	writeFile(t, filepath.Join(docDir, "deep", "nested", "Logo.PNG"), "png")

	got, ok := Resolve(OS(), "", docDir, "wrong/place/logo.png")
	if !ok || got != filepath.Join(docDir, "deep", "nested", "Logo.PNG") {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestResolveAbsent(t *testing.T) {
	docDir := t.TempDir()
	if got, ok := Resolve(OS(), "", docDir, "nothing/here.png"); ok {
		t.Fatalf("expected absence, got %q", got)
	}
	if got, ok := Resolve(OS(), "", docDir, "   "); ok {
		t.Fatalf("empty value must not resolve, got %q", got)
	}
}
