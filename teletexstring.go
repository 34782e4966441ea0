package ber

/*
teletexstring.go implements the ASN.1 TeletexString (T61String)
accessors (§4.3, tag 20). Grounded on the teacher's t61.go range table,
collapsed to the core Latin/control ranges it sets — the teacher's full
table also admits a long tail of combining diacritics (0x0300-0x030C)
which this module keeps, since T.61 genuinely reserves that range for
accent characters.
*/

var teletexStringRanges = []charRange{
	{0x0009, 0x000F},
	{0x0020, 0x0039},
	{0x0041, 0x005B},
	{0x0061, 0x007A},
	{0x008B, 0x008C},
	{0x00A0, 0x00FF},
	{0x0126, 0x0127},
	{0x0131, 0x0132},
	{0x0140, 0x0142},
	{0x0149, 0x014A},
	{0x0152, 0x0153},
	{0x0166, 0x0167},
	{0x0300, 0x0304},
	{0x0306, 0x0308},
	{0x030A, 0x030C},
}

// TeletexString decodes e as a TeletexString.
func (e Element) TeletexString() (string, error) {
	return decodeSimpleString(e, "TeletexString", "TeletexString", teletexStringRanges)
}

// SetTeletexString returns a new Element encoding s as a TeletexString,
// universal class, tag 20, primitive.
func SetTeletexString(s string) (Element, error) {
	return setSimpleString(TagTeletexString, "SetTeletexString", "TeletexString", s, teletexStringRanges)
}
