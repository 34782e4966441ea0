package ber

import "math/big"

/*
choice.go implements the six-variant "identification" CHOICE shared by
EXTERNAL, EmbeddedPDV and CharacterString (§4.4, component C4, Design
Notes §9 "Tagged value dispatch"). Grounded on the teacher's pdv.go
init(), which registers the same six variants against a reflect-driven
Choices registry; this module replaces that registry with a plain
tagged-union struct; one Kind, one set of alternative fields, all
context-specific class at the tag numbers the teacher's registration
calls out (0 through 5).
*/

// IdentificationKind selects which alternative of the identification
// CHOICE is populated.
type IdentificationKind uint8

const (
	IdentificationSyntaxes IdentificationKind = iota
	IdentificationSyntax
	IdentificationPresentationContextID
	IdentificationContextNegotiation
	IdentificationTransferSyntax
	IdentificationFixed
)

const (
	identTagSyntaxes             = 0
	identTagSyntax               = 1
	identTagPresentationContext  = 2
	identTagContextNegotiation   = 3
	identTagTransferSyntax       = 4
	identTagFixed                = 5
)

// Syntaxes carries the abstract/transfer syntax pair of the "syntaxes"
// alternative.
type Syntaxes struct {
	Abstract []uint64
	Transfer []uint64
}

// ContextNegotiation carries the OSI presentation-context negotiation
// alternative.
type ContextNegotiation struct {
	PresentationContextID *big.Int
	TransferSyntax        []uint64
}

/*
Identification is the decoded form of the six-variant CHOICE.
Exactly the field matching Kind is meaningful.
*/
type Identification struct {
	Kind                   IdentificationKind
	Syntaxes               Syntaxes
	Syntax                 []uint64
	PresentationContextID  *big.Int
	ContextNegotiation     ContextNegotiation
	TransferSyntax         []uint64
	// Fixed carries no data; its presence is Kind == IdentificationFixed.
}

// decodeIdentification parses e (a context-specific tagged element, the
// identification slot's immediate child) into an Identification.
func decodeIdentification(e Element, budget int) (Identification, error) {
	if e.Class != ClassContextSpecific {
		return Identification{}, newErr(TagClass, "Identification", "", "identification alternative must be context-specific")
	}

	switch e.Tag {
	case identTagSyntaxes:
		children, err := parseChildren(e.Content, budget)
		if err != nil {
			return Identification{}, err
		}
		if len(children) != 2 {
			return Identification{}, newErr(Value, "Identification", "Syntaxes", "expected exactly two components")
		}
		abstract, err := children[0].ObjectIdentifier()
		if err != nil {
			return Identification{}, err
		}
		transfer, err := children[1].ObjectIdentifier()
		if err != nil {
			return Identification{}, err
		}
		return Identification{Kind: IdentificationSyntaxes, Syntaxes: Syntaxes{Abstract: abstract, Transfer: transfer}}, nil

	case identTagSyntax:
		oid, err := Element{Class: ClassUniversal, Tag: TagOID, Content: e.Content}.ObjectIdentifier()
		if err != nil {
			return Identification{}, err
		}
		return Identification{Kind: IdentificationSyntax, Syntax: oid}, nil

	case identTagPresentationContext:
		v, err := Element{Class: ClassUniversal, Tag: TagInteger, Content: e.Content}.Integer()
		if err != nil {
			return Identification{}, err
		}
		return Identification{Kind: IdentificationPresentationContextID, PresentationContextID: v}, nil

	case identTagContextNegotiation:
		children, err := parseChildren(e.Content, budget)
		if err != nil {
			return Identification{}, err
		}
		if len(children) != 2 {
			return Identification{}, newErr(Value, "Identification", "ContextNegotiation", "expected exactly two components")
		}
		pcid, err := children[0].Integer()
		if err != nil {
			return Identification{}, err
		}
		ts, err := children[1].ObjectIdentifier()
		if err != nil {
			return Identification{}, err
		}
		return Identification{Kind: IdentificationContextNegotiation, ContextNegotiation: ContextNegotiation{PresentationContextID: pcid, TransferSyntax: ts}}, nil

	case identTagTransferSyntax:
		oid, err := Element{Class: ClassUniversal, Tag: TagOID, Content: e.Content}.ObjectIdentifier()
		if err != nil {
			return Identification{}, err
		}
		return Identification{Kind: IdentificationTransferSyntax, TransferSyntax: oid}, nil

	case identTagFixed:
		if len(e.Content) != 0 {
			return Identification{}, newErr(ValueSize, "Identification", "Fixed", "expected empty content")
		}
		return Identification{Kind: IdentificationFixed}, nil

	default:
		return Identification{}, newErr(TagNumber, "Identification", "", "unrecognized identification alternative tag")
	}
}

// encodeIdentification serializes id as the context-specific tagged
// alternative it selects.
func encodeIdentification(id Identification) (Element, error) {
	switch id.Kind {
	case IdentificationSyntaxes:
		abstract, err := SetObjectIdentifier(id.Syntaxes.Abstract)
		if err != nil {
			return Element{}, err
		}
		transfer, err := SetObjectIdentifier(id.Syntaxes.Transfer)
		if err != nil {
			return Element{}, err
		}
		content := append(abstract.ToBytes(), transfer.ToBytes()...)
		return Element{Class: ClassContextSpecific, Tag: identTagSyntaxes, Compound: true, Content: content}, nil

	case IdentificationSyntax:
		oid, err := SetObjectIdentifier(id.Syntax)
		if err != nil {
			return Element{}, err
		}
		return Element{Class: ClassContextSpecific, Tag: identTagSyntax, Content: oid.Content}, nil

	case IdentificationPresentationContextID:
		return Element{Class: ClassContextSpecific, Tag: identTagPresentationContext, Content: encodeTwosComplement(id.PresentationContextID)}, nil

	case IdentificationContextNegotiation:
		pcid := SetInteger(id.ContextNegotiation.PresentationContextID)
		ts, err := SetObjectIdentifier(id.ContextNegotiation.TransferSyntax)
		if err != nil {
			return Element{}, err
		}
		content := append(pcid.ToBytes(), ts.ToBytes()...)
		return Element{Class: ClassContextSpecific, Tag: identTagContextNegotiation, Compound: true, Content: content}, nil

	case IdentificationTransferSyntax:
		oid, err := SetObjectIdentifier(id.TransferSyntax)
		if err != nil {
			return Element{}, err
		}
		return Element{Class: ClassContextSpecific, Tag: identTagTransferSyntax, Content: oid.Content}, nil

	case IdentificationFixed:
		return Element{Class: ClassContextSpecific, Tag: identTagFixed}, nil

	default:
		return Element{}, newErr(Value, "Identification", "", "unknown identification kind")
	}
}
