package ber

import "testing"

func TestVisibleStringRoundTrip(t *testing.T) {
	el, err := SetVisibleString("Visible Text 123!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := el.VisibleString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Visible Text 123!" {
		t.Errorf("got %q", got)
	}
}

func TestVisibleString_rejectsControlCharacters(t *testing.T) {
	if _, err := SetVisibleString("a\tb"); err == nil {
		t.Fatal("expected ValueCharacters error for a tab character")
	}
}
