package scan_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/modernice/glyphset/scan"
)

func TestRunes_Add(t *testing.T) {
	runes := make(scan.Runes)

	runes.Add('é')
	runes.Add('é')
	runes.Add('©')

	if runes.Len() != 2 {
		t.Fatalf("set should have 2 runes; has %d", runes.Len())
	}

	if !runes.Has('é') || !runes.Has('©') {
		t.Fatalf("set should contain 'é' and '©'; got %q", runes)
	}

	if runes.Has('a') {
		t.Fatal("set should not contain 'a'")
	}
}

func TestRunes_Sorted(t *testing.T) {
	runes := make(scan.Runes)
	for _, r := range "Ωé©→" {
		runes.Add(r)
	}

	// code points: © (U+00A9) < é (U+00E9) < Ω (U+03A9) < → (U+2192)
	want := []rune{'©', 'é', 'Ω', '→'}

	if got := runes.Sorted(); !cmp.Equal(want, got) {
		t.Fatalf("unexpected order:\n%s", cmp.Diff(want, got))
	}

	if got := runes.String(); got != "©éΩ→" {
		t.Fatalf("String should return %q; got %q", "©éΩ→", got)
	}
}

func TestRunes_Slice(t *testing.T) {
	runes := make(scan.Runes)
	for _, r := range "é©" {
		runes.Add(r)
	}

	slice := runes.Slice()
	if len(slice) != 2 {
		t.Fatalf("Slice should return 2 runes; got %d", len(slice))
	}

	for _, r := range slice {
		if !runes.Has(r) {
			t.Fatalf("Slice returned %q, which is not in the set", r)
		}
	}
}
