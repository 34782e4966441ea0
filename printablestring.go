package ber

/*
printablestring.go implements the ASN.1 PrintableString accessors (§4.3,
tag 19): letters, digits, space and a fixed punctuation set. Grounded
on the teacher's ps.go range table.
*/

var printableStringRanges = []charRange{
	{' ', ' '},
	{'\'', ')'},
	{'+', '/'},
	{':', ':'},
	{'=', '='},
	{'?', '?'},
	{'0', '9'},
	{'A', 'Z'},
	{'a', 'z'},
}

// PrintableString decodes e as a PrintableString.
func (e Element) PrintableString() (string, error) {
	return decodeSimpleString(e, "PrintableString", "PrintableString", printableStringRanges)
}

// SetPrintableString returns a new Element encoding s as a
// PrintableString, universal class, tag 19, primitive.
func SetPrintableString(s string) (Element, error) {
	return setSimpleString(TagPrintableString, "SetPrintableString", "PrintableString", s, printableStringRanges)
}
