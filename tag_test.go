package ber

import (
	"errors"
	"testing"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		class    Class
		compound bool
		tag      int
		n        int
	}{
		{"universal-primitive-low-tag", []byte{0x02}, ClassUniversal, false, 2, 1},
		{"context-compound-low-tag", []byte{0xA0}, ClassContextSpecific, true, 0, 1},
		{"application-primitive-high-tag", []byte{0x5F, 0x81, 0x00}, ClassApplication, false, 128, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, compound, tag, n, err := parseIdentifier(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if class != tt.class || compound != tt.compound || tag != tt.tag || n != tt.n {
				t.Errorf("got (%v,%v,%d,%d) want (%v,%v,%d,%d)", class, compound, tag, n, tt.class, tt.compound, tt.tag, tt.n)
			}
		})
	}
}

func TestParseIdentifier_leadingZeroContinuation(t *testing.T) {
	_, _, _, _, err := parseIdentifier([]byte{0x1F, 0x80, 0x01})
	if err == nil {
		t.Fatal("expected error for leading-zero continuation byte")
	}
	if !errors.Is(err, KindError(TagPadding)) {
		t.Errorf("expected TagPadding, got %v", err)
	}
}

func TestEncodeIdentifierRoundTrip(t *testing.T) {
	for _, tag := range []int{0, 30, 31, 127, 128, 16384} {
		dst := encodeIdentifier(nil, ClassContextSpecific, true, tag)
		class, compound, got, n, err := parseIdentifier(dst)
		if err != nil {
			t.Fatalf("tag %d: unexpected error: %v", tag, err)
		}
		if class != ClassContextSpecific || !compound || got != tag || n != len(dst) {
			t.Errorf("tag %d: round trip mismatch: got %d", tag, got)
		}
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		name   string
		in     []byte
		length int
		n      int
	}{
		{"short-form", []byte{0x05}, 5, 1},
		{"long-form-one-byte", []byte{0x81, 0xFF}, 255, 2},
		{"indefinite", []byte{0x80}, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length, n, err := parseLength(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if length != tt.length || n != tt.n {
				t.Errorf("got (%d,%d) want (%d,%d)", length, n, tt.length, tt.n)
			}
		})
	}
}

func TestParseLength_reserved(t *testing.T) {
	_, _, err := parseLength([]byte{0xFF})
	if err == nil {
		t.Fatal("expected error for reserved 0xFF length byte")
	}
}

func TestEncodeLengthRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 127, 128, 256, 65536} {
		dst := encodeLength(nil, n)
		got, consumed, err := parseLength(dst)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if got != n || consumed != len(dst) {
			t.Errorf("n=%d: round trip mismatch: got %d", n, got)
		}
	}
}
