package ber

/*
composite.go implements the Composite codec shared by EmbeddedPDV and
CharacterString (§4.4): both are constructed SEQUENCEs of exactly two
children — a context-specific tag 0 carrying the six-variant
identification CHOICE (choice.go), and a context-specific tag 2 carrying
an OCTET STRING payload. EXTERNAL does NOT share this shape; it has its
own legacy positional codec in external.go.

Grounded on the teacher's pdv.go EmbeddedPDV struct for the field set,
generalized into one decode/encode pair both embeddedpdv.go and
characterstring.go call under their own tag.
*/

// Composite is the decoded form of an EmbeddedPDV or CharacterString
// value: an identification CHOICE plus its OCTET STRING payload.
type Composite struct {
	Identification Identification
	Value          []byte
}

const (
	compositeTagIdentification = 0
	compositeTagValue          = 2
)

// decodeComposite decodes e as a Composite under the given outer tag.
func decodeComposite(e Element, tag int, op string) (Composite, error) {
	if !e.matchTag(ClassUniversal, tag) {
		return Composite{}, newErr(TagNumber, op, "", "unexpected tag")
	}
	if err := requireCompound(e, op); err != nil {
		return Composite{}, err
	}

	children, err := parseChildren(e.Content, DefaultMaxDepth)
	if err != nil {
		return Composite{}, err
	}
	if len(children) != 2 {
		return Composite{}, newErr(Value, op, "", "expected exactly two components")
	}

	idChild := children[0]
	if idChild.Class != ClassContextSpecific || idChild.Tag != compositeTagIdentification {
		return Composite{}, newErr(TagClass, op, "", "first component must be context-specific tag 0")
	}
	inner, _, perr := parseElement(idChild.Content, DefaultMaxDepth)
	if perr != nil {
		return Composite{}, perr
	}
	id, perr := decodeIdentification(inner, DefaultMaxDepth)
	if perr != nil {
		return Composite{}, perr
	}

	valChild := children[1]
	if valChild.Class != ClassContextSpecific || valChild.Tag != compositeTagValue {
		return Composite{}, newErr(TagClass, op, "", "second component must be context-specific tag 2")
	}
	synth := Element{Class: ClassUniversal, Tag: TagOctetString, Compound: valChild.Compound, Content: valChild.Content}
	v, perr := synth.OctetString()
	if perr != nil {
		return Composite{}, perr
	}

	return Composite{Identification: id, Value: v}, nil
}

// encodeComposite serializes c as a constructed Element under the given
// outer tag.
func encodeComposite(tag int, c Composite) (Element, error) {
	idEl, err := encodeIdentification(c.Identification)
	if err != nil {
		return Element{}, err
	}
	idWrapper := Element{Class: ClassContextSpecific, Tag: compositeTagIdentification, Compound: true, Content: idEl.ToBytes()}

	valEl := SetOctetString(c.Value)
	valWrapper := Element{Class: ClassContextSpecific, Tag: compositeTagValue, Content: valEl.Content}

	content := append(idWrapper.ToBytes(), valWrapper.ToBytes()...)
	return Element{Class: ClassUniversal, Tag: tag, Compound: true, Content: content}, nil
}
