package ber

import "testing"

func TestOctetStringRoundTrip(t *testing.T) {
	want := []byte("hello world")
	el := SetOctetString(want)
	got, err := el.OctetString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOctetString_constructedReassembly(t *testing.T) {
	part1 := SetOctetString([]byte("foo"))
	part2 := SetOctetString([]byte("bar"))
	outer := Element{
		Class:    ClassUniversal,
		Tag:      TagOctetString,
		Compound: true,
		Content:  append(part1.ToBytes(), part2.ToBytes()...),
	}
	got, err := outer.OctetString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "foobar" {
		t.Errorf("got %q, want %q", got, "foobar")
	}
}

func TestOctetString_empty(t *testing.T) {
	el := SetOctetString(nil)
	got, err := el.OctetString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
