package ber

import (
	"math/bits"
	"strconv"
)

/*
oid.go implements the ASN.1 OBJECT IDENTIFIER and RELATIVE-OID
accessors (§4.3, component C3, tags 6 and 13). Per spec.md, the
OID/OIDNode container type itself is out of scope — this codec
produces and consumes a plain []uint64 of arcs. Grounded on the
teacher's oid.go: the first-two-arc folding rule (write) and the VLQ
subidentifier walk (readBER/decodeFirstArcs) are reused, adapted from
the teacher's *[big.Int]-per-arc representation to a uint64-per-arc one
per SPEC_FULL.md's decision to treat each arc as word-sized, reporting
ValueOverflow on an arc that would not fit.
*/

/*
ObjectIdentifier decodes e as an OBJECT IDENTIFIER, returning its arcs.
The wire form's folded first subidentifier is split back into the two
leading arcs per X.690 §8.19.4.
*/
func (e Element) ObjectIdentifier() ([]uint64, error) {
	if err := requirePrimitive(e, "ObjectIdentifier"); err != nil {
		return nil, err
	}
	arcs, err := decodeVLQArcs(e.Content, "ObjectIdentifier", "OBJECT IDENTIFIER")
	if err != nil {
		return nil, err
	}
	if len(arcs) == 0 {
		return nil, newErr(ValueSize, "ObjectIdentifier", "OBJECT IDENTIFIER", "empty content")
	}

	first := arcs[0]
	var arc1, arc2 uint64
	switch {
	case first < 40:
		arc1, arc2 = 0, first
	case first < 80:
		arc1, arc2 = 1, first-40
	default:
		arc1, arc2 = 2, first-80
	}

	out := make([]uint64, 0, len(arcs)+1)
	out = append(out, arc1, arc2)
	out = append(out, arcs[1:]...)
	return out, nil
}

/*
SetObjectIdentifier returns a new Element encoding arcs as an OBJECT
IDENTIFIER, universal class, tag 6, primitive. arcs must contain at
least two elements, with arcs[0] one of 0, 1 or 2; if arcs[0] is 0 or 1,
arcs[1] must be below 40, matching the X.690 folding constraint.
*/
func SetObjectIdentifier(arcs []uint64) (Element, error) {
	if len(arcs) < 2 {
		return Element{}, newErr(ValueSize, "SetObjectIdentifier", "OBJECT IDENTIFIER", "fewer than two arcs")
	}
	if arcs[0] > 2 {
		return Element{}, newErr(Value, "SetObjectIdentifier", "OBJECT IDENTIFIER", "first arc must be 0, 1 or 2")
	}
	if arcs[0] < 2 && arcs[1] >= 40 {
		return Element{}, newErr(Value, "SetObjectIdentifier", "OBJECT IDENTIFIER", "second arc must be below 40")
	}

	first := arcs[0]*40 + arcs[1]
	content := encodeVLQUint64(nil, first)
	for _, a := range arcs[2:] {
		content = encodeVLQUint64(content, a)
	}
	return Element{Class: ClassUniversal, Tag: TagOID, Content: content}, nil
}

// RelativeOID decodes e as a RELATIVE-OID: arcs are encoded without the
// first-two-arc folding OBJECT IDENTIFIER uses.
func (e Element) RelativeOID() ([]uint64, error) {
	if err := requirePrimitive(e, "RelativeOID"); err != nil {
		return nil, err
	}
	return decodeVLQArcs(e.Content, "RelativeOID", "RELATIVE-OID")
}

// SetRelativeOID returns a new Element encoding arcs as a RELATIVE-OID,
// universal class, tag 13, primitive.
func SetRelativeOID(arcs []uint64) Element {
	var content []byte
	for _, a := range arcs {
		content = encodeVLQUint64(content, a)
	}
	return Element{Class: ClassUniversal, Tag: TagRelativeOID, Content: content}
}

// ObjectIdentifierString renders arcs in dotted-decimal notation, e.g.
// "1.2.840.113549".
func ObjectIdentifierString(arcs []uint64) string {
	b := make([]byte, 0, len(arcs)*4)
	for i, a := range arcs {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, a, 10)
	}
	return string(b)
}

// decodeVLQArcs walks content as a sequence of base-128 big-endian
// variable-length subidentifiers, rejecting a leading 0x80 continuation
// byte (ValuePadding) and an arc exceeding uint64 (ValueOverflow).
func decodeVLQArcs(content []byte, op, typ string) ([]uint64, error) {
	if len(content) == 0 {
		return nil, newErr(ValueSize, op, typ, "empty content")
	}

	var arcs []uint64
	i := 0
	for i < len(content) {
		if content[i] == 0x80 {
			return nil, newErrByte(ValuePadding, op, typ, "leading-zero continuation byte in subidentifier", content[i])
		}
		var v uint64
		start := i
		for {
			if i >= len(content) {
				return nil, newErr(Truncation, op, typ, "truncated subidentifier")
			}
			c := content[i]
			if bits.Len64(v) > 64-7 {
				return nil, newErr(ValueOverflow, op, typ, "arc exceeds 64 bits")
			}
			v = (v << 7) | uint64(c&0x7F)
			i++
			if c&0x80 == 0 {
				break
			}
			if i == start+10 {
				return nil, newErr(ValueOverflow, op, typ, "arc exceeds 64 bits")
			}
		}
		arcs = append(arcs, v)
	}
	return arcs, nil
}

// encodeVLQUint64 appends the base-128 big-endian VLQ encoding of v to
// dst, continuation bit set on every byte but the last.
func encodeVLQUint64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, 0x00)
	}
	var tmp [10]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte(v & 0x7F)
		v >>= 7
	}
	for j := i; j < len(tmp)-1; j++ {
		tmp[j] |= 0x80
	}
	return append(dst, tmp[i:]...)
}
