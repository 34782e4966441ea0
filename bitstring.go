package ber

/*
bitstring.go implements the ASN.1 BIT STRING accessors (§4.3, component
C3, tag 3), including constructed-form reassembly and the presentational
helpers (§3 SUPPLEMENTED FEATURES). Grounded on the teacher's bs.go:
the unused-bits leading octet rule, the At/Bits/Hex helpers and the
binary-string rendering are reused near verbatim, adapted from the
teacher's dedicated BitString struct to a decode/encode pair operating
on Element content directly.

Constructed-form reassembly does NOT use the shared reassembleConstructed
routine from reassemble.go: that routine concatenates each child's raw
Content, which for BIT STRING would fold every child's own leading
unused-bits octet into the middle of the data. §4.3 requires each child
to be decoded as its own BIT STRING, with only the last child allowed a
non-zero unused-bits count; bitStringReassemble below implements that
directly.
*/

// BitString is the decoded form of a BIT STRING value: the bits
// themselves, left-aligned in Bytes, and the logical bit count.
type BitString struct {
	Bytes     []byte
	BitLength int
}

/*
BitString decodes e as a BIT STRING. A constructed encoding is
reassembled per §4.3 before the leading unused-bits octet of the final
concatenated content is interpreted; it must be 0 through 7, and 0 if
the content is otherwise empty.
*/
func (e Element) BitString() (BitString, error) {
	return e.bitString(DefaultMaxDepth)
}

func (e Element) bitString(budget int) (BitString, error) {
	if e.Compound {
		return bitStringReassemble(e, "BitString", budget)
	}
	return decodeBitStringContent(e.Content)
}

// decodeBitStringContent interprets content as a primitive BIT STRING's
// content octets: a leading unused-bits count (0 through 7, and 0 if no
// data octets follow) followed by the data itself.
func decodeBitStringContent(content []byte) (BitString, error) {
	if len(content) == 0 {
		return BitString{}, newErr(ValueSize, "BitString", "BIT STRING", "empty content")
	}

	unused := int(content[0])
	if unused > 7 {
		return BitString{}, newErrByte(Value, "BitString", "BIT STRING", "unused-bits count exceeds 7", content[0])
	}
	if len(content) == 1 && unused != 0 {
		return BitString{}, newErrByte(Value, "BitString", "BIT STRING", "unused-bits count must be 0 for empty value", content[0])
	}

	data := content[1:]
	return BitString{Bytes: data, BitLength: len(data)*8 - unused}, nil
}

/*
bitStringReassemble walks a constructed BIT STRING's children (each
sharing e's class and tag), decoding every one as its own BIT STRING and
concatenating their bits in order. Per §4.3, only the last child overall
may carry a non-zero unused-bits count; any earlier child with leftover
bits fails with Value.
*/
func bitStringReassemble(e Element, op string, budget int) (BitString, error) {
	nextBudget, err := depthCheck(budget, op)
	if err != nil {
		return BitString{}, err
	}

	var bs BitString
	rest := e.Content
	for len(rest) > 0 {
		child, n, perr := parseElement(rest, nextBudget)
		if perr != nil {
			return BitString{}, perr
		}
		if child.Class != e.Class || child.Tag != e.Tag {
			return BitString{}, newErr(Construction, op, "", "constructed child has mismatched class/tag")
		}
		more := rest[n:]

		if bs.BitLength%8 != 0 {
			return BitString{}, newErr(Value, op, "BIT STRING", "only the last child may have a non-zero unused-bits count")
		}

		var childBits BitString
		if child.Compound {
			childBits, perr = bitStringReassemble(child, op, nextBudget)
		} else {
			childBits, perr = decodeBitStringContent(child.Content)
		}
		if perr != nil {
			return BitString{}, perr
		}

		bs.Bytes = append(bs.Bytes, childBits.Bytes...)
		bs.BitLength += childBits.BitLength
		rest = more
	}
	return bs, nil
}

// SetBitString returns a new Element encoding bs as a BIT STRING,
// universal class, tag 3, primitive, definite form.
func SetBitString(bs BitString) Element {
	unused := len(bs.Bytes)*8 - bs.BitLength
	content := make([]byte, 0, len(bs.Bytes)+1)
	content = append(content, byte(unused))
	content = append(content, bs.Bytes...)
	return Element{Class: ClassUniversal, Tag: TagBitString, Content: content}
}

// At returns the bit at logical index idx (0 = most significant bit of
// the first byte), or 0 if idx is out of range.
func (r BitString) At(idx int) int {
	if idx < 0 || idx >= r.BitLength {
		return 0
	}
	x := idx / 8
	y := 7 - uint(idx%8)
	return int(r.Bytes[x]>>y) & 1
}

// Bits renders r in ASN.1 bstring notation, e.g. "'1011'B".
func (r BitString) Bits() string {
	out := make([]byte, 0, r.BitLength+3)
	remaining := r.BitLength
	for _, b := range r.Bytes {
		width := 8
		if remaining < 8 {
			width = remaining
			b >>= uint(8 - width)
		}
		for i := width - 1; i >= 0; i-- {
			out = append(out, '0'+(b>>uint(i))&1)
		}
		remaining -= width
		if remaining <= 0 {
			break
		}
	}
	return "'" + string(out) + "'B"
}

// Hex renders r in ASN.1 hstring notation, e.g. "'B5'H", masking any
// trailing unused bits to zero first.
func (r BitString) Hex() string {
	if r.BitLength == 0 {
		return "''H"
	}
	b := append([]byte(nil), r.Bytes...)
	unused := len(b)*8 - r.BitLength
	if unused > 0 {
		b[len(b)-1] &^= byte((1 << uint(unused)) - 1)
	}
	return "'" + FormatHex(b) + "'H"
}
