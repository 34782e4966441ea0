package ber

/*
graphicstring.go implements the ASN.1 GraphicString accessors (§4.3,
tag 25). GraphicString is a union of every registered graphic (non-
control) character set; lacking the teacher's registry for it (gs.go
carries no range table of its own), this module permits any byte
outside the C0/C1 control ranges, the permissive reading consistent
with X.680's definition of GraphicString as "any graphic character".
*/

var graphicStringRanges = []charRange{
	{0x20, 0x7E},
	{0xA0, 0xFF},
}

// GraphicString decodes e as a GraphicString.
func (e Element) GraphicString() (string, error) {
	return decodeSimpleString(e, "GraphicString", "GraphicString", graphicStringRanges)
}

// SetGraphicString returns a new Element encoding s as a GraphicString,
// universal class, tag 25, primitive.
func SetGraphicString(s string) (Element, error) {
	return setSimpleString(TagGraphicString, "SetGraphicString", "GraphicString", s, graphicStringRanges)
}
