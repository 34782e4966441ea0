package ber

/*
generalstring.go implements the ASN.1 GeneralString accessors (§4.3,
tag 27). GeneralString is GraphicString plus the C0 control characters
(it adds back the escape sequences GraphicString excludes); the
teacher's gs.go carries no dedicated range table either, so this
module permits the full byte range, matching X.680's definition of
GeneralString as "any character from any registered set, including
control functions".
*/

var generalStringRanges = []charRange{
	{0x00, 0xFF},
}

// GeneralString decodes e as a GeneralString.
func (e Element) GeneralString() (string, error) {
	return decodeSimpleString(e, "GeneralString", "GeneralString", generalStringRanges)
}

// SetGeneralString returns a new Element encoding s as a GeneralString,
// universal class, tag 27, primitive.
func SetGeneralString(s string) (Element, error) {
	return setSimpleString(TagGeneralString, "SetGeneralString", "GeneralString", s, generalStringRanges)
}
