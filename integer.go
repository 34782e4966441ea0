package ber

import "math/big"

/*
integer.go implements the ASN.1 INTEGER accessors (§4.3, component C3,
tag 2). Grounded on the teacher's int.go: decodeIntegerContent's
two's-complement-via-power-of-two-subtraction algorithm and
encodeIntegerContent's sign-prepend algorithm are reused verbatim, minus
the int64/*big.Int dual-representation optimization — this module always
returns a *big.Int, leaving small-int convenience to the caller via
Int64().
*/

/*
Integer decodes e as an INTEGER, returning its value as a *big.Int.
Per X.690 §8.3, the content must be the minimal two's-complement
encoding; a superfluous leading 0x00 or 0xFF byte is rejected as
ValuePadding.
*/
func (e Element) Integer() (*big.Int, error) {
	if err := requirePrimitive(e, "Integer"); err != nil {
		return nil, err
	}
	if len(e.Content) == 0 {
		return nil, newErr(ValueSize, "Integer", "INTEGER", "empty content")
	}
	if err := checkMinimalTwosComplement(e.Content); err != nil {
		return nil, err
	}
	return decodeTwosComplement(e.Content), nil
}

/*
Int64 decodes e as an INTEGER and narrows it to int64, failing with
ValueOverflow if the decoded magnitude does not fit.
*/
func (e Element) Int64() (int64, error) {
	v, err := e.Integer()
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, newErr(ValueOverflow, "Int64", "INTEGER", "value does not fit in int64")
	}
	return v.Int64(), nil
}

/*
SetInteger returns a new Element encoding v as an INTEGER, universal
class, tag 2, primitive.
*/
func SetInteger(v *big.Int) Element {
	return Element{Class: ClassUniversal, Tag: TagInteger, Content: encodeTwosComplement(v)}
}

// SetInt64 is the int64 convenience form of SetInteger.
func SetInt64(v int64) Element {
	return SetInteger(big.NewInt(v))
}

// checkMinimalTwosComplement rejects a leading byte that is redundant
// with the sign of the following byte, the BER padding rule shared by
// INTEGER and ENUMERATED.
func checkMinimalTwosComplement(b []byte) error {
	if len(b) < 2 {
		return nil
	}
	if (b[0] == 0x00 && b[1]&0x80 == 0) || (b[0] == 0xFF && b[1]&0x80 != 0) {
		return newErrByte(ValuePadding, "Integer", "INTEGER", "non-minimal two's-complement encoding", b[0])
	}
	return nil
}

// decodeTwosComplement reads b as a big-endian two's-complement integer
// of arbitrary length.
func decodeTwosComplement(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		twoPow := new(big.Int).Lsh(big.NewInt(1), uint(len(b)*8))
		v.Sub(v, twoPow)
	}
	return v
}

// encodeTwosComplement writes v as the minimal big-endian two's-complement
// encoding, including the zero-value single 0x00 byte case.
func encodeTwosComplement(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}
	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	// Negative: find the minimal octet count n such that
	// v >= -(1 << (8n-1)), then form the two's complement over that width.
	abs := new(big.Int).Abs(v)
	n := (abs.BitLen() + 7) / 8
	if n == 0 {
		n = 1
	}
	min := new(big.Int).Lsh(big.NewInt(1), uint(8*n-1))
	min.Neg(min)
	if v.Cmp(min) < 0 {
		n++
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	u := new(big.Int).Add(mod, v)
	b := u.Bytes()
	for len(b) < n {
		b = append([]byte{0x00}, b...)
	}
	return b
}
