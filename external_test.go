package ber

import (
	"math/big"
	"testing"
)

func TestExternalRoundTrip_singleASN1Type(t *testing.T) {
	ext := External{
		DirectReference:    []uint64{1, 2, 840, 113549},
		HasDirectReference: true,
		Kind:               ExternalSingleASN1Type,
		Value:              SetBool(true),
	}
	el, err := SetExternal(ext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.Tag != TagExternal || !el.Compound {
		t.Fatalf("expected constructed EXTERNAL, got %+v", el)
	}

	got, err := el.External()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.HasDirectReference || ObjectIdentifierString(got.DirectReference) != ObjectIdentifierString(ext.DirectReference) {
		t.Errorf("got %+v", got)
	}
	if got.Kind != ExternalSingleASN1Type {
		t.Errorf("got Kind=%v, want ExternalSingleASN1Type", got.Kind)
	}
	gotBool, err := got.Value.Bool()
	if err != nil || gotBool != true {
		t.Errorf("got Value=%+v, err=%v", got.Value, err)
	}
}

func TestExternalRoundTrip_octetAligned(t *testing.T) {
	ext := External{
		IndirectReference:    big.NewInt(7),
		HasIndirectReference: true,
		Kind:                 ExternalOctetAligned,
		OctetValue:           []byte{0xDE, 0xAD, 0xBE, 0xEF},
	}
	el, err := SetExternal(ext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := el.External()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.HasIndirectReference || got.IndirectReference.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("got %+v", got)
	}
	if got.Kind != ExternalOctetAligned || string(got.OctetValue) != string(ext.OctetValue) {
		t.Errorf("got %+v", got)
	}
}

func TestExternalRoundTrip_arbitraryBits(t *testing.T) {
	ext := External{
		DataValueDescriptor:    "a human-readable description",
		HasDataValueDescriptor: true,
		Kind:                   ExternalArbitrary,
		BitValue:               BitString{Bytes: []byte{0xB5}, BitLength: 8},
	}
	el, err := SetExternal(ext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := el.External()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.HasDataValueDescriptor || got.DataValueDescriptor != ext.DataValueDescriptor {
		t.Errorf("got %+v", got)
	}
	if got.Kind != ExternalArbitrary || got.BitValue.BitLength != 8 || string(got.BitValue.Bytes) != string(ext.BitValue.Bytes) {
		t.Errorf("got %+v", got)
	}
}

func TestExternalRoundTrip_fourComponents(t *testing.T) {
	ext := External{
		DirectReference:        []uint64{2, 1, 1},
		HasDirectReference:     true,
		IndirectReference:      big.NewInt(3),
		HasIndirectReference:   true,
		DataValueDescriptor:    "desc",
		HasDataValueDescriptor: true,
		Kind:                   ExternalOctetAligned,
		OctetValue:             []byte("payload"),
	}
	el, err := SetExternal(ext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := el.External()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.HasDirectReference || !got.HasIndirectReference || !got.HasDataValueDescriptor {
		t.Errorf("got %+v", got)
	}
	if string(got.OctetValue) != "payload" {
		t.Errorf("got value %q", got.OctetValue)
	}
}

func TestExternal_wrongTag(t *testing.T) {
	el := SetSequence(nil)
	if _, err := el.External(); err == nil {
		t.Fatal("expected TagNumber error for a SEQUENCE presented as EXTERNAL")
	}
}

func TestExternal_wrongComponentCount(t *testing.T) {
	el := Element{Class: ClassUniversal, Tag: TagExternal, Compound: true, Content: SetBool(true).ToBytes()}
	if _, err := el.External(); err == nil {
		t.Fatal("expected error for fewer than two components")
	}
}

func TestExternal_compoundPrefixRejected(t *testing.T) {
	oid, _ := SetObjectIdentifier([]uint64{2, 1, 1})
	badPrefix := Element{Class: ClassUniversal, Tag: TagOID, Compound: true, Content: oid.Content}
	last := Element{Class: ClassContextSpecific, Tag: 1, Content: []byte("x")}
	content := append(badPrefix.ToBytes(), last.ToBytes()...)
	el := Element{Class: ClassUniversal, Tag: TagExternal, Compound: true, Content: content}
	if _, err := el.External(); err == nil {
		t.Fatal("expected Construction error for a compound prefix component")
	}
}

func TestExternal_duplicatePrefixRejected(t *testing.T) {
	oid, _ := SetObjectIdentifier([]uint64{2, 1, 1})
	last := Element{Class: ClassContextSpecific, Tag: 1, Content: []byte("x")}
	content := append(append(oid.ToBytes(), oid.ToBytes()...), last.ToBytes()...)
	el := Element{Class: ClassUniversal, Tag: TagExternal, Compound: true, Content: content}
	if _, err := el.External(); err == nil {
		t.Fatal("expected Value error for a duplicate OBJECT IDENTIFIER prefix component")
	}
}

func TestExternal_outOfOrderPrefixRejected(t *testing.T) {
	oid, _ := SetObjectIdentifier([]uint64{2, 1, 1})
	integer := SetInteger(big.NewInt(1))
	last := Element{Class: ClassContextSpecific, Tag: 1, Content: []byte("x")}
	// INTEGER before OBJECT IDENTIFIER violates the OID/INTEGER/ObjectDescriptor order.
	content := append(append(integer.ToBytes(), oid.ToBytes()...), last.ToBytes()...)
	el := Element{Class: ClassUniversal, Tag: TagExternal, Compound: true, Content: content}
	if _, err := el.External(); err == nil {
		t.Fatal("expected Value error for out-of-order prefix components")
	}
}

func TestExternal_badLastComponentTag(t *testing.T) {
	oid, _ := SetObjectIdentifier([]uint64{2, 1, 1})
	last := Element{Class: ClassContextSpecific, Tag: 3, Content: []byte("x")}
	content := append(oid.ToBytes(), last.ToBytes()...)
	el := Element{Class: ClassUniversal, Tag: TagExternal, Compound: true, Content: content}
	if _, err := el.External(); err == nil {
		t.Fatal("expected Value error for a last component tag outside 0-2")
	}
}
