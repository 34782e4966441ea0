package ber

/*
sequence.go implements the ASN.1 SEQUENCE and SET accessors (§4.4,
component C4, tags 16 and 17). Both share the same wire shape at this
codec's level of abstraction: a constructed element whose content is a
concatenation of complete child TLVs, in encoding order. Ordering and
component-identity semantics belong to a schema layer this module
doesn't have (§0's Non-goals), so SEQUENCE and SET are both modeled as
"ordered list of child Elements" — grounded on the teacher's seq.go/
set.go, stripped of the reflect.Value struct-field binding that exists
solely to serve struct-tag marshaling.
*/

/*
Children decodes e's content as a concatenation of complete TLVs and
returns them in encoding order. e must be constructed; a SEQUENCE or
SET with no components yields an empty, non-nil slice.
*/
func (e Element) Children() ([]Element, error) {
	if err := requireCompound(e, "Children"); err != nil {
		return nil, err
	}
	return parseChildren(e.Content, DefaultMaxDepth)
}

func parseChildren(content []byte, budget int) ([]Element, error) {
	nextBudget, err := depthCheck(budget, "Children")
	if err != nil {
		return nil, err
	}

	children := make([]Element, 0)
	rest := content
	for len(rest) > 0 {
		child, n, perr := parseElement(rest, nextBudget)
		if perr != nil {
			return nil, perr
		}
		children = append(children, child)
		rest = rest[n:]
	}
	return children, nil
}

// SetSequence returns a new Element encoding children as a SEQUENCE,
// universal class, tag 16, constructed, in the given order.
func SetSequence(children []Element) Element {
	return Element{Class: ClassUniversal, Tag: TagSequence, Compound: true, Content: encodeChildren(children)}
}

// SetSet returns a new Element encoding children as a SET, universal
// class, tag 17, constructed. Canonical (DER) ordering is out of scope
// for this BER-only codec; children are encoded in the given order.
func SetSet(children []Element) Element {
	return Element{Class: ClassUniversal, Tag: TagSet, Compound: true, Content: encodeChildren(children)}
}

func encodeChildren(children []Element) []byte {
	var out []byte
	for _, c := range children {
		out = append(out, c.ToBytes()...)
	}
	return out
}
