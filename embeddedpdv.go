package ber

/*
embeddedpdv.go exposes the shared Composite codec (composite.go) under
the EmbeddedPDV tag (§4.4, component C4, tag 11). Grounded on the
teacher's pdv.go EmbeddedPDV struct, which carries the same
Identification/DataValueDescriptor/DataValue shape this module's
Composite type models directly.
*/

// EmbeddedPDV decodes e as an EmbeddedPDV value.
func (e Element) EmbeddedPDV() (Composite, error) {
	return decodeComposite(e, TagEmbeddedPDV, "EmbeddedPDV")
}

// SetEmbeddedPDV returns a new Element encoding c as an EmbeddedPDV,
// universal class, tag 11, constructed.
func SetEmbeddedPDV(c Composite) (Element, error) {
	return encodeComposite(TagEmbeddedPDV, c)
}
