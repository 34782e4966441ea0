package ber

/*
errors.go contains the typed failure taxonomy used throughout this
package (§7 of the BER specification this module implements).

Grounded on the teacher's err.go: the package-level error-literal table
and the variadic mkerrf string-builder are kept in spirit, but recast as
a single typed Error carrying a Kind plus the contextual fields callers
need to act on a failure (offending byte, expected/actual sizes, the
ASN.1 type name in play) instead of opaque strings.
*/

import "strconv"

/*
Kind enumerates the categories of failure a parse or value accessor can
raise. Every Error produced by this package carries exactly one Kind.
*/
type Kind uint8

const (
	_ Kind = iota

	// Truncation signals input that ended mid-header or mid-value.
	Truncation

	// TagPadding signals a long-form tag number with a leading-zero
	// continuation byte (0x80 as the first continuation octet).
	TagPadding

	// TagOverflow signals a tag number exceeding the target word size.
	TagOverflow

	// LengthUndefined signals the reserved 0xFF length octet.
	LengthUndefined

	// LengthOverflow signals a long-form length byte count, or a
	// declared length, that would overflow cursor arithmetic.
	LengthOverflow

	// Length signals a generic length violation not covered above.
	Length

	// Construction signals a constructed/primitive flag violating the
	// type's requirement.
	Construction

	// ValueSize signals content of a length outside the allowed range
	// for the type.
	ValueSize

	// ValuePadding signals unnecessary leading/padding bytes in an
	// INTEGER, ENUMERATED, REAL or OID encoding.
	ValuePadding

	// ValueOverflow signals a decoded numeric magnitude exceeding the
	// target type's capacity.
	ValueOverflow

	// ValueCharacters signals a string containing a character outside
	// the permitted set for its type.
	ValueCharacters

	// ValueUndefined signals a REAL information byte selecting a
	// reserved encoding.
	ValueUndefined

	// Value signals any other semantic violation (wrong SEQUENCE
	// shape, duplicate component, and so on).
	Value

	// TagClass signals a nested element with the wrong tag class.
	TagClass

	// TagNumber signals a nested element with the wrong tag number.
	TagNumber

	// Recursion signals nesting beyond the configured recursion limit.
	Recursion
)

func (k Kind) String() string {
	switch k {
	case Truncation:
		return "Truncation"
	case TagPadding:
		return "TagPadding"
	case TagOverflow:
		return "TagOverflow"
	case LengthUndefined:
		return "LengthUndefined"
	case LengthOverflow:
		return "LengthOverflow"
	case Length:
		return "Length"
	case Construction:
		return "Construction"
	case ValueSize:
		return "ValueSize"
	case ValuePadding:
		return "ValuePadding"
	case ValueOverflow:
		return "ValueOverflow"
	case ValueCharacters:
		return "ValueCharacters"
	case ValueUndefined:
		return "ValueUndefined"
	case Value:
		return "Value"
	case TagClass:
		return "TagClass"
	case TagNumber:
		return "TagNumber"
	case Recursion:
		return "Recursion"
	default:
		return "Unknown"
	}
}

/*
Error implements the error interface for every failure this package
raises. Op names the operation in progress (e.g. "Parse", "Integer",
"BitString"); Type names the ASN.1 type involved, if any; Msg carries a
short human-readable detail. Expected/Actual/Byte are populated only
when meaningful for the Kind in question.
*/
type Error struct {
	Kind     Kind
	Op       string
	Type     string
	Msg      string
	Expected int
	Actual   int
	Byte     byte
	hasByte  bool
}

func (e *Error) Error() string {
	b := make([]byte, 0, 64)
	b = append(b, e.Kind.String()...)
	if e.Op != "" {
		b = append(b, ' ')
		b = append(b, e.Op...)
	}
	if e.Type != "" {
		b = append(b, " ("...)
		b = append(b, e.Type...)
		b = append(b, ')')
	}
	if e.Msg != "" {
		b = append(b, ": "...)
		b = append(b, e.Msg...)
	}
	if e.hasByte {
		b = append(b, ": byte=0x"...)
		b = strconv.AppendUint(b, uint64(e.Byte), 16)
	}
	if e.Expected != 0 || e.Actual != 0 {
		b = append(b, ": expected="...)
		b = strconv.AppendInt(b, int64(e.Expected), 10)
		b = append(b, " actual="...)
		b = strconv.AppendInt(b, int64(e.Actual), 10)
	}
	return string(b)
}

/*
Is reports whether err carries the given Kind, so callers can write
errors.Is(err, ber.Truncation)-style checks via errKindSentinel.
*/
func (e *Error) Is(target error) bool {
	if k, ok := target.(kindSentinel); ok {
		return e.Kind == Kind(k)
	}
	return false
}

// kindSentinel lets a bare Kind value participate in errors.Is checks
// without requiring callers to import anything beyond this package.
type kindSentinel Kind

func (k kindSentinel) Error() string { return Kind(k).String() }

/*
KindError returns a sentinel error value for use with errors.Is, e.g.
errors.Is(err, ber.KindError(ber.Truncation)).
*/
func KindError(k Kind) error { return kindSentinel(k) }

func newErr(kind Kind, op, typ, msg string) *Error {
	return &Error{Kind: kind, Op: op, Type: typ, Msg: msg}
}

func newErrByte(kind Kind, op, typ, msg string, b byte) *Error {
	return &Error{Kind: kind, Op: op, Type: typ, Msg: msg, Byte: b, hasByte: true}
}

func newErrSize(kind Kind, op, typ string, expected, actual int) *Error {
	return &Error{Kind: kind, Op: op, Type: typ, Expected: expected, Actual: actual}
}
