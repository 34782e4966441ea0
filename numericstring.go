package ber

/*
numericstring.go implements the ASN.1 NumericString accessors (§4.3,
tag 18): digits 0-9 and space. Grounded on the teacher's ns.go.
*/

var numericStringRanges = []charRange{
	{' ', ' '},
	{'0', '9'},
}

// NumericString decodes e as a NumericString.
func (e Element) NumericString() (string, error) {
	return decodeSimpleString(e, "NumericString", "NumericString", numericStringRanges)
}

// SetNumericString returns a new Element encoding s as a NumericString,
// universal class, tag 18, primitive.
func SetNumericString(s string) (Element, error) {
	return setSimpleString(TagNumericString, "SetNumericString", "NumericString", s, numericStringRanges)
}
