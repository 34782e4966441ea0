package ber

/*
visiblestring.go implements the ASN.1 VisibleString (ISO646String)
accessors (§4.3, tag 26): printable ASCII, 0x20-0x7E.
*/

var visibleStringRanges = []charRange{
	{0x20, 0x7E},
}

// VisibleString decodes e as a VisibleString.
func (e Element) VisibleString() (string, error) {
	return decodeSimpleString(e, "VisibleString", "VisibleString", visibleStringRanges)
}

// SetVisibleString returns a new Element encoding s as a VisibleString,
// universal class, tag 26, primitive.
func SetVisibleString(s string) (Element, error) {
	return setSimpleString(TagVisibleString, "SetVisibleString", "VisibleString", s, visibleStringRanges)
}
