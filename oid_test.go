package ber

import "testing"

func TestObjectIdentifierRoundTrip(t *testing.T) {
	tests := [][]uint64{
		{1, 2, 840, 113549, 1},
		{0, 0},
		{2, 5, 4, 3},
		{1, 39},
	}
	for _, arcs := range tests {
		el, err := SetObjectIdentifier(arcs)
		if err != nil {
			t.Fatalf("arcs=%v: unexpected error: %v", arcs, err)
		}
		got, err := el.ObjectIdentifier()
		if err != nil {
			t.Fatalf("arcs=%v: unexpected error: %v", arcs, err)
		}
		if len(got) != len(arcs) {
			t.Fatalf("arcs=%v: got %v", arcs, got)
		}
		for i := range arcs {
			if got[i] != arcs[i] {
				t.Errorf("arcs=%v: got %v", arcs, got)
				break
			}
		}
	}
}

func TestObjectIdentifier_wellKnownWireForm(t *testing.T) {
	// 1.2.840.113549 -> first two arcs fold to 40*1+2 = 42 = 0x2A
	el, err := SetObjectIdentifier([]uint64{1, 2, 840, 113549})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.Content[0] != 0x2A {
		t.Errorf("got first content byte %#x, want 0x2A", el.Content[0])
	}
}

func TestObjectIdentifier_invalidFolding(t *testing.T) {
	if _, err := SetObjectIdentifier([]uint64{0, 40}); err == nil {
		t.Fatal("expected error: second arc must be below 40 when first arc is 0")
	}
	if _, err := SetObjectIdentifier([]uint64{3, 1}); err == nil {
		t.Fatal("expected error: first arc must be 0, 1 or 2")
	}
	if _, err := SetObjectIdentifier([]uint64{1}); err == nil {
		t.Fatal("expected error: fewer than two arcs")
	}
}

func TestObjectIdentifier_leadingZeroContinuation(t *testing.T) {
	el := Element{Class: ClassUniversal, Tag: TagOID, Content: []byte{0x80, 0x01}}
	if _, err := el.ObjectIdentifier(); err == nil {
		t.Fatal("expected ValuePadding error for leading 0x80 continuation byte")
	}
}

func TestObjectIdentifier_arcOverflow(t *testing.T) {
	content := make([]byte, 10)
	for i := range content {
		content[i] = 0xFF
	}
	content[len(content)-1] = 0x7F
	el := Element{Class: ClassUniversal, Tag: TagOID, Content: content}
	if _, err := el.ObjectIdentifier(); err == nil {
		t.Fatal("expected ValueOverflow error for arc exceeding 64 bits")
	}
}

func TestRelativeOIDRoundTrip(t *testing.T) {
	arcs := []uint64{113549, 1, 1}
	el := SetRelativeOID(arcs)
	got, err := el.RelativeOID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(arcs) {
		t.Fatalf("got %v", got)
	}
	for i := range arcs {
		if got[i] != arcs[i] {
			t.Errorf("got %v, want %v", got, arcs)
		}
	}
}

func TestObjectIdentifierString(t *testing.T) {
	got := ObjectIdentifierString([]uint64{1, 2, 840, 113549, 1})
	want := "1.2.840.113549.1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
