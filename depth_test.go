package ber

import "testing"

func TestDepthCheck(t *testing.T) {
	next, err := depthCheck(3, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != 2 {
		t.Errorf("got %d, want 2", next)
	}
}

func TestDepthCheck_exhausted(t *testing.T) {
	_, err := depthCheck(0, "test")
	if err == nil {
		t.Fatal("expected Recursion error at budget 0")
	}
}
