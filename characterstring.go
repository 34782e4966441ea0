package ber

/*
characterstring.go exposes the shared Composite codec (composite.go)
under the CharacterString tag (§4.4, component C4, tag 29). X.690
defines CHARACTER STRING with the identical identification/descriptor/
string-value shape as EmbeddedPDV; the teacher does not implement this
type, so this module extends the same Composite model to it per
SPEC_FULL.md's supplemented-features policy — every [MODULE] spec.md
names gets a concrete codec, not just the ones the teacher happened to
carry.
*/

// CharacterString decodes e as a CharacterString value.
func (e Element) CharacterString() (Composite, error) {
	return decodeComposite(e, TagCharacterString, "CharacterString")
}

// SetCharacterString returns a new Element encoding c as a
// CharacterString, universal class, tag 29, constructed.
func SetCharacterString(c Composite) (Element, error) {
	return encodeComposite(TagCharacterString, c)
}
