package otml

import (
	"testing"
)

func TestCanonical(t *testing.T) {
	in := "MainWindow\n\n   size: 200 120\n\n  Panel\n"
	want := "MainWindow\n  size: 200 120\n  Panel\n"
	got := Canonical([]byte(in))
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if again := Canonical([]byte(got)); again != got {
		t.Fatalf("canonical form not idempotent: %q then %q", got, again)
	}
}

func TestEqual(t *testing.T) {
	a := []byte("a\n  b: 1\n")
	b := []byte("a\n\n  b:   1\n")
	if !Equal(a, b) {
		t.Fatal("texts with the same tree must be equal")
	}
	if Equal(a, []byte("a\n  b: 2\n")) {
		t.Fatal("texts with different values must not be equal")
	}
}

func TestCanonicalEmpty(t *testing.T) {
	if got := Canonical(nil); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
