package ber

/*
null.go implements the ASN.1 NULL accessor (§4.3, component C3, tag 5).
Grounded on the teacher's null.go, stripped of the codec-registry glue.
*/

// Null validates e as a zero-length NULL, universal class, tag 5,
// primitive.
func (e Element) Null() error {
	if err := requirePrimitive(e, "Null"); err != nil {
		return err
	}
	if len(e.Content) != 0 {
		return newErrSize(ValueSize, "Null", "NULL", 0, len(e.Content))
	}
	return nil
}

// SetNull returns the canonical NULL element.
func SetNull() Element {
	return Element{Class: ClassUniversal, Tag: TagNull}
}
