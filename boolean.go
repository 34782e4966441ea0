package ber

/*
boolean.go implements the ASN.1 BOOLEAN accessors (§4.3, component C3,
tag 1). Grounded on the teacher's bool.go, generalized to operate
directly on an Element's Content rather than through a Boolean wrapper
type plus the generic codec registry.
*/

/*
Bool decodes e as a BOOLEAN. Per X.690 §8.2.2, any non-zero content
octet denotes TRUE under BER (unlike CER/DER, which require 0xFF); this
codec being BER-only, that leniency is exactly what's implemented.
*/
func (e Element) Bool() (bool, error) {
	if err := requirePrimitive(e, "Bool"); err != nil {
		return false, err
	}
	if len(e.Content) != 1 {
		return false, newErrSize(ValueSize, "Bool", "BOOLEAN", 1, len(e.Content))
	}
	return e.Content[0] != 0x00, nil
}

/*
SetBool returns a new Element encoding v as a BOOLEAN, universal class,
tag 1, primitive.
*/
func SetBool(v bool) Element {
	var b byte
	if v {
		b = 0xFF
	}
	return Element{Class: ClassUniversal, Tag: TagBoolean, Content: []byte{b}}
}
