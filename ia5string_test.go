package ber

import "testing"

func TestIA5StringRoundTrip(t *testing.T) {
	el, err := SetIA5String("user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := el.IA5String()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "user@example.com" {
		t.Errorf("got %q", got)
	}
}

func TestIA5String_rejectsNonASCII(t *testing.T) {
	if _, err := SetIA5String("café"); err == nil {
		t.Fatal("expected ValueCharacters error for byte above 0x7F")
	}
}

func TestIA5String_decodeRejectsHighByte(t *testing.T) {
	el := Element{Class: ClassUniversal, Tag: TagIA5String, Content: []byte{0x80}}
	if _, err := el.IA5String(); err == nil {
		t.Fatal("expected ValueCharacters error: IA5 is a 7-bit alphabet")
	}
}
