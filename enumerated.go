package ber

import "math/big"

/*
enumerated.go implements the ASN.1 ENUMERATED accessors (§4.3, component
C3, tag 10). Per spec.md, ENUMERATED shares INTEGER's content encoding
exactly; grounded on the teacher's enum.go, which likewise reuses the
INTEGER codec bodies under a distinct tag.
*/

// Enumerated decodes e as an ENUMERATED value, returning a *big.Int per
// the same minimal two's-complement rule as Integer.
func (e Element) Enumerated() (*big.Int, error) {
	if err := requirePrimitive(e, "Enumerated"); err != nil {
		return nil, err
	}
	if len(e.Content) == 0 {
		return nil, newErr(ValueSize, "Enumerated", "ENUMERATED", "empty content")
	}
	if err := checkMinimalTwosComplement(e.Content); err != nil {
		return nil, err
	}
	return decodeTwosComplement(e.Content), nil
}

// SetEnumerated returns a new Element encoding v as an ENUMERATED,
// universal class, tag 10, primitive.
func SetEnumerated(v *big.Int) Element {
	return Element{Class: ClassUniversal, Tag: TagEnumerated, Content: encodeTwosComplement(v)}
}

// SetEnumeratedInt is the int convenience form of SetEnumerated.
func SetEnumeratedInt(v int) Element {
	return SetEnumerated(big.NewInt(int64(v)))
}
