package ber

import "testing"

func TestEnumeratedRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, -1, 42, -42, 1000} {
		el := SetEnumeratedInt(v)
		if el.Tag != TagEnumerated {
			t.Fatalf("expected tag %d, got %d", TagEnumerated, el.Tag)
		}
		got, err := el.Enumerated()
		if err != nil {
			t.Fatalf("v=%d: unexpected error: %v", v, err)
		}
		if got.Int64() != int64(v) {
			t.Errorf("v=%d: got %d", v, got.Int64())
		}
	}
}

func TestEnumerated_wrongTag(t *testing.T) {
	el := SetInt64(5)
	if _, err := el.Enumerated(); err == nil {
		t.Fatal("expected error: ENUMERATED and INTEGER share content rules but not tags")
	}
}
