package ber

import "testing"

func TestTeletexStringRoundTrip(t *testing.T) {
	el, err := SetTeletexString("Teletex 123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := el.TeletexString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Teletex 123" {
		t.Errorf("got %q", got)
	}
}

func TestTeletexString_rejectsOutOfRange(t *testing.T) {
	el := Element{Class: ClassUniversal, Tag: TagTeletexString, Content: []byte{0x01}}
	if _, err := el.TeletexString(); err == nil {
		t.Fatal("expected ValueCharacters error for byte outside permitted ranges")
	}
}
