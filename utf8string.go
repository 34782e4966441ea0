package ber

import "unicode/utf8"

/*
utf8string.go implements the ASN.1 UTF8String accessors (§4.3, tag 12).
Grounded on the teacher's utf8.go, which validates with
unicode/utf8.ValidString; this module does the same after constructed-
form reassembly.
*/

// UTF8String decodes e as a UTF8String.
func (e Element) UTF8String() (string, error) {
	var content []byte
	var err error
	if e.Compound {
		content, err = reassembleConstructed(e, "UTF8String", DefaultMaxDepth)
		if err != nil {
			return "", err
		}
	} else {
		content = e.Content
	}
	if !utf8.Valid(content) {
		return "", newErr(ValueCharacters, "UTF8String", "UTF8String", "invalid UTF-8 encoding")
	}
	return string(content), nil
}

// SetUTF8String returns a new Element encoding s as a UTF8String,
// universal class, tag 12, primitive.
func SetUTF8String(s string) (Element, error) {
	if !utf8.ValidString(s) {
		return Element{}, newErr(ValueCharacters, "SetUTF8String", "UTF8String", "invalid UTF-8 encoding")
	}
	return Element{Class: ClassUniversal, Tag: TagUTF8String, Content: []byte(s)}, nil
}
