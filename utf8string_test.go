package ber

import "testing"

func TestUTF8StringRoundTrip(t *testing.T) {
	el, err := SetUTF8String("héllo wörld 世界")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := el.UTF8String()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "héllo wörld 世界" {
		t.Errorf("got %q", got)
	}
}

func TestUTF8String_rejectsInvalidBytes(t *testing.T) {
	el := Element{Class: ClassUniversal, Tag: TagUTF8String, Content: []byte{0xFF, 0xFE}}
	if _, err := el.UTF8String(); err == nil {
		t.Fatal("expected ValueCharacters error for invalid UTF-8")
	}
}

func TestUTF8String_constructedReassembly(t *testing.T) {
	part1, _ := SetUTF8String("foo")
	part2, _ := SetUTF8String("bar")
	outer := Element{
		Class:    ClassUniversal,
		Tag:      TagUTF8String,
		Compound: true,
		Content:  append(part1.ToBytes(), part2.ToBytes()...),
	}
	got, err := outer.UTF8String()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "foobar" {
		t.Errorf("got %q", got)
	}
}
