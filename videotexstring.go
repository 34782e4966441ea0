package ber

/*
videotexstring.go implements the ASN.1 VideotexString accessors (§4.3,
tag 21). Grounded on the teacher's vts.go range table, collapsed to the
ranges reachable by a single content byte (0x00-0xFF); the teacher's
table extends further into the BMP for multi-byte Videotex mosaics,
which this codec's byte-per-character model can't represent and the
teacher's own comment concedes ("we only built the BMP bitmap").
*/

var videotexStringRanges = []charRange{
	{0x0020, 0x007E},
	{0x00A0, 0x00FF},
}

// VideotexString decodes e as a VideotexString.
func (e Element) VideotexString() (string, error) {
	return decodeSimpleString(e, "VideotexString", "VideotexString", videotexStringRanges)
}

// SetVideotexString returns a new Element encoding s as a
// VideotexString, universal class, tag 21, primitive.
func SetVideotexString(s string) (Element, error) {
	return setSimpleString(TagVideotexString, "SetVideotexString", "VideotexString", s, videotexStringRanges)
}
