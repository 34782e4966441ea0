package ber

/*
octetstring.go implements the ASN.1 OCTET STRING accessors (§4.3,
component C3, tag 4), including constructed-form reassembly. Grounded
on the teacher's oct.go, which is the simplest of the constructed-form
types: no unused-bits byte, just raw concatenation.
*/

// OctetString decodes e as an OCTET STRING, reassembling a constructed
// encoding per §4.3.
func (e Element) OctetString() ([]byte, error) {
	if e.Compound {
		return reassembleConstructed(e, "OctetString", DefaultMaxDepth)
	}
	return e.Content, nil
}

// SetOctetString returns a new Element encoding b as an OCTET STRING,
// universal class, tag 4, primitive, definite form.
func SetOctetString(b []byte) Element {
	return Element{Class: ClassUniversal, Tag: TagOctetString, Content: append([]byte(nil), b...)}
}
