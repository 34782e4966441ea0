package ber

/*
element.go implements the element model (§3, §4.2, component C2): the
in-memory representation of one BER TLV and its parse/serialize pair.

Grounded on the teacher's tlv.go (TLV struct, encodeTLV/getTLV/writeTLV,
tlvString) and pkt.go (parseBody/parseFullBytes/findEOC), generalized to
operate directly on a byte slice rather than through the teacher's
Packet/PDU cursor abstraction — this module has no struct-tag marshaling
layer sitting above the element model, so the extra indirection buys
nothing.
*/

import "strconv"

/*
Class identifies one of the four ASN.1 tag classes carried in the two
high bits of an identifier octet.
*/
type Class uint8

const (
	ClassUniversal       Class = 0
	ClassApplication     Class = 1
	ClassContextSpecific Class = 2
	ClassPrivate         Class = 3
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContextSpecific:
		return "CONTEXT-SPECIFIC"
	case ClassPrivate:
		return "PRIVATE"
	default:
		return "INVALID"
	}
}

/*
Universal tag numbers (ITU-T X.680 §8), used both as defaults when
constructing an Element for a given ASN.1 type and as the expected tag
when validating one decoded from the wire.
*/
const (
	TagEOC              = 0
	TagBoolean          = 1
	TagInteger          = 2
	TagBitString        = 3
	TagOctetString      = 4
	TagNull             = 5
	TagOID              = 6
	TagObjectDescriptor = 7
	TagExternal         = 8
	TagReal             = 9
	TagEnumerated       = 10
	TagEmbeddedPDV      = 11
	TagUTF8String       = 12
	TagRelativeOID      = 13
	TagSequence         = 16
	TagSet              = 17
	TagNumericString    = 18
	TagPrintableString  = 19
	TagTeletexString    = 20
	TagVideotexString   = 21
	TagIA5String        = 22
	TagUTCTime          = 23
	TagGeneralizedTime  = 24
	TagGraphicString    = 25
	TagVisibleString    = 26
	TagGeneralString    = 27
	TagUniversalString  = 28
	TagCharacterString  = 29
	TagBMPString        = 30
)

/*
BEREncodingOID is the assigned identifier of the BER encoding itself:
{joint-iso-itu-t asn1(1) basic-encoding(1)} = 2.1.1 (§6).
*/
var BEREncodingOID = []uint64{2, 1, 1}

/*
Element is the central entity of the data model (§3): one BER TLV held
in memory as class, construction flag, tag number and opaque content
bytes. Elements own their content buffer exclusively; decoders copy
bytes out of the input so an Element's lifetime never depends on the
byte slice it was parsed from.

Indefinite reports the encode-time length-encoding preference; it
defaults to false (definite form) and has no bearing on how an Element
parsed from the wire is re-serialized unless explicitly set.
*/
type Element struct {
	Class    Class
	Tag      int
	Compound bool
	Content  []byte

	Indefinite bool
}

/*
New returns the default Element: the END-OF-CONTENT placeholder
(universal class, primitive, tag 0, empty content), matching the
teacher's zero-value TLV semantics.
*/
func New() Element {
	return Element{Class: ClassUniversal, Tag: TagEOC}
}

/*
Parse reads one complete element from the front of data and returns it
alongside the number of bytes consumed, including the header and, for
indefinite form, the two-byte end-of-content marker.
*/
func Parse(data []byte) (Element, int, error) {
	return parseElement(data, DefaultMaxDepth)
}

/*
ParseAt reads one complete element from data starting at *cursor and
advances *cursor past it. It is the cursor-tracking parse entry point
described in §4.2 ("Streaming convenience").
*/
func ParseAt(data []byte, cursor *int) (Element, error) {
	if *cursor < 0 || *cursor > len(data) {
		return Element{}, newErr(Truncation, "ParseAt", "", "cursor out of bounds")
	}
	el, n, err := parseElement(data[*cursor:], DefaultMaxDepth)
	if err != nil {
		return Element{}, err
	}
	*cursor += n
	return el, nil
}

/*
Chomp reads one complete element from the front of *data and reslices
*data to the unconsumed remainder. It is the "chomping" parse entry
point described in §4.2.
*/
func Chomp(data *[]byte) (Element, error) {
	el, n, err := parseElement(*data, DefaultMaxDepth)
	if err != nil {
		return Element{}, err
	}
	*data = (*data)[n:]
	return el, nil
}

// parseElement is the shared core behind Parse/ParseAt/Chomp. budget
// bounds indefinite-length descent per §4.5/§9.
func parseElement(data []byte, budget int) (Element, int, error) {
	class, compound, tag, idLen, err := parseIdentifier(data)
	if err != nil {
		return Element{}, 0, err
	}

	length, lenLen, err := parseLength(data[idLen:])
	if err != nil {
		return Element{}, 0, err
	}

	headerLen := idLen + lenLen

	if length == -1 {
		if !compound {
			return Element{}, 0, newErr(Construction, "Parse", "",
				"indefinite length on primitive element")
		}
		nextBudget, derr := depthCheck(budget, "Parse")
		if derr != nil {
			return Element{}, 0, derr
		}
		content, consumed, err := scanIndefinite(data[headerLen:], nextBudget)
		if err != nil {
			return Element{}, 0, err
		}
		el := Element{Class: class, Tag: tag, Compound: compound, Content: content, Indefinite: true}
		return el, headerLen + consumed, nil
	}

	end := headerLen + length
	if end < headerLen || end > len(data) {
		return Element{}, 0, newErrSize(Truncation, "Parse", "", end, len(data))
	}

	content := append([]byte(nil), data[headerLen:end]...)
	el := Element{Class: class, Tag: tag, Compound: compound, Content: content}
	return el, end, nil
}

// scanIndefinite walks children of an indefinite-length constructed
// element until the terminating EOC (universal, primitive, tag 0,
// zero-length) is found, returning the concatenated child bytes (the
// element's content, per §3's invariant that no EOC marker is retained)
// and the total bytes consumed including the two-byte terminator.
func scanIndefinite(data []byte, budget int) (content []byte, consumed int, err error) {
	off := 0
	for {
		if off >= len(data) {
			return nil, 0, newErr(Truncation, "Parse", "", "unterminated indefinite-length element")
		}

		class, compound, tag, idLen, perr := parseIdentifier(data[off:])
		if perr != nil {
			return nil, 0, perr
		}
		if class == ClassUniversal && !compound && tag == TagEOC {
			length, lenLen, lerr := parseLength(data[off+idLen:])
			if lerr == nil && length == 0 {
				end := off + idLen + lenLen
				return append([]byte(nil), data[:off]...), end, nil
			}
		}

		child, n, perr := parseElement(data[off:], budget)
		if perr != nil {
			return nil, 0, perr
		}
		off += n
	}
}

/*
ToBytes serializes the element's header and content, appending the
two-byte end-of-content terminator iff Indefinite is set.
*/
func (e Element) ToBytes() []byte {
	out := make([]byte, 0, len(e.Content)+8)
	out = encodeIdentifier(out, e.Class, e.Compound, e.Tag)
	if e.Indefinite {
		out = append(out, 0x80)
		out = append(out, e.Content...)
		out = append(out, 0x00, 0x00)
		return out
	}
	out = encodeLength(out, len(e.Content))
	out = append(out, e.Content...)
	return out
}

func (e Element) String() string {
	b := make([]byte, 0, 64)
	b = append(b, "{Class:"...)
	b = append(b, e.Class.String()...)
	b = append(b, ", Tag:"...)
	b = strconv.AppendInt(b, int64(e.Tag), 10)
	b = append(b, ", Compound:"...)
	b = strconv.AppendBool(b, e.Compound)
	b = append(b, ", Length:"...)
	b = strconv.AppendInt(b, int64(len(e.Content)), 10)
	b = append(b, '}')
	return string(b)
}

// matchTag reports whether e carries the given class and tag, used
// pervasively by the C3/C4 getters to enforce §4's "Construction" and
// tag-identity checks before interpreting content.
func (e Element) matchTag(class Class, tag int) bool {
	return e.Class == class && e.Tag == tag
}

// requirePrimitive is the shared guard used by every primitive getter:
// the element must be primitive, per §4.3's blanket rule.
func requirePrimitive(e Element, op string) error {
	if e.Compound {
		return newErr(Construction, op, "", "element is constructed, expected primitive")
	}
	return nil
}

// requireCompound is the mirror guard for SEQUENCE/SET/composite types.
func requireCompound(e Element, op string) error {
	if !e.Compound {
		return newErr(Construction, op, "", "element is primitive, expected constructed")
	}
	return nil
}

// FormatHex renders data as an upper-case hex string with no separator,
// a small debug convenience grounded on the teacher's formatHex/hexstr
// helpers (pkt.go, common.go).
func FormatHex(data []byte) string {
	const hexdigits = "0123456789ABCDEF"
	out := make([]byte, len(data)*2)
	for i, b := range data {
		out[i*2] = hexdigits[b>>4]
		out[i*2+1] = hexdigits[b&0x0F]
	}
	return string(out)
}
