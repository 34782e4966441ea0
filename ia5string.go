package ber

/*
ia5string.go implements the ASN.1 IA5String accessors (§4.3, tag 22):
International Alphabet No. 5, the 7-bit code point range 0x00-0x7F.

The teacher's ia5.go documents "0x00 through 0xFF" and validates against
that 8-bit range, which is wider than IA5 (a 7-bit alphabet) actually
permits. That looks like a doc/validation bug in the teacher rather than
a deliberate choice, so this module validates the correct 7-bit range
instead of reproducing it — recorded in DESIGN.md.
*/

var ia5StringRanges = []charRange{
	{0x00, 0x7F},
}

// IA5String decodes e as an IA5String.
func (e Element) IA5String() (string, error) {
	return decodeSimpleString(e, "IA5String", "IA5String", ia5StringRanges)
}

// SetIA5String returns a new Element encoding s as an IA5String,
// universal class, tag 22, primitive.
func SetIA5String(s string) (Element, error) {
	return setSimpleString(TagIA5String, "SetIA5String", "IA5String", s, ia5StringRanges)
}
