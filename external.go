package ber

import "math/big"

/*
external.go implements the ASN.1 EXTERNAL accessor (§4.4, component C4,
tag 8): the legacy pre-1994 positional encoding per X.690 §8.18, not the
identification-CHOICE shape EmbeddedPDV and CharacterString use (those
live in embeddedpdv.go/characterstring.go, sharing the Composite codec
in choice.go-adjacent form). spec.md §4.4 is explicit that EXTERNAL is
SEQUENCE of 2-4 children: all but the last are universal-class (OBJECT
IDENTIFIER, INTEGER, ObjectDescriptor, in that relative order, each
optional), and the last is context-specific with tag 0, 1 or 2 selecting
the encoding choice (single-ASN.1-type / octet-aligned / arbitrary).

Grounded on the teacher's pdv.go External struct for the field set, but
not its decode routine — the teacher aliases External onto the same
identification-CHOICE shape as EmbeddedPDV, which does not match the
legacy positional grammar spec.md §4.4 actually describes; this module
implements the count-based decoder table instead.
*/

// ExternalEncodingKind selects which alternative of EXTERNAL's trailing
// "encoding" CHOICE a value carries.
type ExternalEncodingKind uint8

const (
	// ExternalSingleASN1Type is the [0] ANY alternative: Value holds
	// the embedded element as decoded from the wrapper's content.
	ExternalSingleASN1Type ExternalEncodingKind = iota
	// ExternalOctetAligned is the [1] IMPLICIT OCTET STRING alternative.
	ExternalOctetAligned
	// ExternalArbitrary is the [2] IMPLICIT BIT STRING alternative.
	ExternalArbitrary
)

/*
External is the decoded form of an EXTERNAL value. DirectReference,
IndirectReference and DataValueDescriptor are each optional per their
Has flags; exactly one of Value/OctetValue/BitValue is meaningful,
selected by Kind.
*/
type External struct {
	DirectReference    []uint64
	HasDirectReference bool

	IndirectReference    *big.Int
	HasIndirectReference bool

	DataValueDescriptor    string
	HasDataValueDescriptor bool

	Kind       ExternalEncodingKind
	Value      Element  // ExternalSingleASN1Type
	OctetValue []byte   // ExternalOctetAligned
	BitValue   BitString // ExternalArbitrary
}

const (
	externalTagSingleASN1Type = 0
	externalTagOctetAligned   = 1
	externalTagArbitrary      = 2
)

/*
External decodes e as an EXTERNAL value. Per spec.md §4.4's decoder
table: the prefix (all children but the last) must be universal-class,
primitive, drawn from {OBJECT IDENTIFIER, INTEGER, ObjectDescriptor}
without repeating a type and without reordering that triple, and the
last child must be context-specific with tag 0, 1 or 2. Any other shape
fails with Value; a compound prefix component fails with Construction.
*/
func (e Element) External() (External, error) {
	if !e.matchTag(ClassUniversal, TagExternal) {
		return External{}, newErr(TagNumber, "External", "EXTERNAL", "unexpected tag")
	}
	if err := requireCompound(e, "External"); err != nil {
		return External{}, err
	}

	children, err := parseChildren(e.Content, DefaultMaxDepth)
	if err != nil {
		return External{}, err
	}
	if len(children) < 2 || len(children) > 4 {
		return External{}, newErr(Value, "External", "EXTERNAL", "expected two to four components")
	}

	last := children[len(children)-1]
	if last.Class != ClassContextSpecific || last.Tag < externalTagSingleASN1Type || last.Tag > externalTagArbitrary {
		return External{}, newErr(Value, "External", "EXTERNAL", "last component must be context-specific, tag 0, 1 or 2")
	}

	out := External{}
	rank := -1 // OID=0, INTEGER=1, ObjectDescriptor=2; enforces relative order
	for _, c := range children[:len(children)-1] {
		if c.Compound {
			return External{}, newErr(Construction, "External", "EXTERNAL", "prefix component must be primitive")
		}
		if c.Class != ClassUniversal {
			return External{}, newErr(Value, "External", "EXTERNAL", "prefix component must be universal-class")
		}

		var thisRank int
		switch c.Tag {
		case TagOID:
			if out.HasDirectReference {
				return External{}, newErr(Value, "External", "EXTERNAL", "duplicate OBJECT IDENTIFIER component")
			}
			arcs, derr := c.ObjectIdentifier()
			if derr != nil {
				return External{}, derr
			}
			out.DirectReference, out.HasDirectReference = arcs, true
			thisRank = 0
		case TagInteger:
			if out.HasIndirectReference {
				return External{}, newErr(Value, "External", "EXTERNAL", "duplicate INTEGER component")
			}
			v, derr := c.Integer()
			if derr != nil {
				return External{}, derr
			}
			out.IndirectReference, out.HasIndirectReference = v, true
			thisRank = 1
		case TagObjectDescriptor:
			if out.HasDataValueDescriptor {
				return External{}, newErr(Value, "External", "EXTERNAL", "duplicate ObjectDescriptor component")
			}
			s, derr := c.ObjectDescriptor()
			if derr != nil {
				return External{}, derr
			}
			out.DataValueDescriptor, out.HasDataValueDescriptor = s, true
			thisRank = 2
		default:
			return External{}, newErr(Value, "External", "EXTERNAL", "prefix component must be OBJECT IDENTIFIER, INTEGER or ObjectDescriptor")
		}
		if thisRank <= rank {
			return External{}, newErr(Value, "External", "EXTERNAL", "prefix components out of order")
		}
		rank = thisRank
	}

	switch last.Tag {
	case externalTagSingleASN1Type:
		if !last.Compound {
			return External{}, newErr(Construction, "External", "EXTERNAL", "single-ASN1-type alternative must be constructed")
		}
		inner, _, perr := parseElement(last.Content, DefaultMaxDepth)
		if perr != nil {
			return External{}, perr
		}
		out.Kind, out.Value = ExternalSingleASN1Type, inner
	case externalTagOctetAligned:
		synth := Element{Class: ClassUniversal, Tag: TagOctetString, Compound: last.Compound, Content: last.Content}
		v, derr := synth.OctetString()
		if derr != nil {
			return External{}, derr
		}
		out.Kind, out.OctetValue = ExternalOctetAligned, v
	case externalTagArbitrary:
		synth := Element{Class: ClassUniversal, Tag: TagBitString, Compound: last.Compound, Content: last.Content}
		v, derr := synth.BitString()
		if derr != nil {
			return External{}, derr
		}
		out.Kind, out.BitValue = ExternalArbitrary, v
	}

	return out, nil
}

/*
SetExternal returns a new Element encoding ext as an EXTERNAL, universal
class, tag 8, constructed, in X.690 §8.18's legacy positional order
(OBJECT IDENTIFIER, INTEGER, ObjectDescriptor, encoding). At least one
prefix component must be present, keeping the total component count in
spec.md §4.4's 2-4 range.
*/
func SetExternal(ext External) (Element, error) {
	var content []byte
	count := 0

	if ext.HasDirectReference {
		oid, err := SetObjectIdentifier(ext.DirectReference)
		if err != nil {
			return Element{}, err
		}
		content = append(content, oid.ToBytes()...)
		count++
	}
	if ext.HasIndirectReference {
		content = append(content, SetInteger(ext.IndirectReference).ToBytes()...)
		count++
	}
	if ext.HasDataValueDescriptor {
		desc, err := SetObjectDescriptor(ext.DataValueDescriptor)
		if err != nil {
			return Element{}, err
		}
		content = append(content, desc.ToBytes()...)
		count++
	}
	if count == 0 {
		return Element{}, newErr(Value, "SetExternal", "EXTERNAL", "at least one of direct-reference, indirect-reference or data-value-descriptor is required")
	}

	var last Element
	switch ext.Kind {
	case ExternalSingleASN1Type:
		last = Element{Class: ClassContextSpecific, Tag: externalTagSingleASN1Type, Compound: true, Content: ext.Value.ToBytes()}
	case ExternalOctetAligned:
		oct := SetOctetString(ext.OctetValue)
		last = Element{Class: ClassContextSpecific, Tag: externalTagOctetAligned, Content: oct.Content}
	case ExternalArbitrary:
		bs := SetBitString(ext.BitValue)
		last = Element{Class: ClassContextSpecific, Tag: externalTagArbitrary, Content: bs.Content}
	default:
		return Element{}, newErr(Value, "SetExternal", "EXTERNAL", "unknown ExternalEncodingKind")
	}
	content = append(content, last.ToBytes()...)
	count++

	if count > 4 {
		return Element{}, newErr(Value, "SetExternal", "EXTERNAL", "too many components")
	}
	return Element{Class: ClassUniversal, Tag: TagExternal, Compound: true, Content: content}, nil
}
