package ber

/*
charstring.go implements the shared decode/encode core for the
single-octet-per-character members of the string family (§4.3,
component C3): NumericString, PrintableString, TeletexString,
VideotexString, IA5String, GraphicString, VisibleString,
GeneralString and ObjectDescriptor. Each of those types' own file
supplies only its tag and its allowed-character predicate; this file
supplies the reassembly, the per-byte validation walk and the setter.

Grounded on the teacher's per-type files (ia5.go, ns.go, ps.go, t61.go,
vts.go, gs.go, vs.go, od.go): each validates with its own rune-range
table over a decoded string. This module generalizes that into one
walk driven by a charRange table per type, rather than repeating the
loop in every file.
*/

// charRange is a closed rune interval, e.g. {0x30, 0x39} for digits.
type charRange struct{ lo, hi rune }

// inRanges reports whether r falls within any of ranges.
func inRanges(r rune, ranges []charRange) bool {
	for _, cr := range ranges {
		if r >= cr.lo && r <= cr.hi {
			return true
		}
	}
	return false
}

// decodeSimpleString reassembles e if constructed, then validates every
// byte (each byte is one character for these single-octet charsets)
// against ranges.
func decodeSimpleString(e Element, op, typ string, ranges []charRange) (string, error) {
	var content []byte
	var err error
	if e.Compound {
		content, err = reassembleConstructed(e, op, DefaultMaxDepth)
		if err != nil {
			return "", err
		}
	} else {
		content = e.Content
	}

	for _, b := range content {
		if !inRanges(rune(b), ranges) {
			return "", newErrByte(ValueCharacters, op, typ, "character outside permitted set", b)
		}
	}
	return string(content), nil
}

// setSimpleString validates s against ranges and returns a primitive
// Element of the given tag, or a ValueCharacters error.
func setSimpleString(tag int, op, typ string, s string, ranges []charRange) (Element, error) {
	for i := 0; i < len(s); i++ {
		if !inRanges(rune(s[i]), ranges) {
			return Element{}, newErrByte(ValueCharacters, op, typ, "character outside permitted set", s[i])
		}
	}
	return Element{Class: ClassUniversal, Tag: tag, Content: []byte(s)}, nil
}
