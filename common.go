package ber

/*
common.go contains import aliases used by multiple files throughout
this package. Grounded directly on the teacher's common.go, which keeps
a package-level table of stdlib function values instead of repeating
standard-library selector expressions across every file; trimmed to the
subset this module's value codecs actually call.
*/

import (
	"math"
	"strconv"
)

var (
	appInt  func([]byte, int64, int) []byte = strconv.AppendInt
	posInf  func() float64                  = func() float64 { return math.Inf(1) }
	negInf  func() float64                  = func() float64 { return math.Inf(-1) }
	nan     func() float64                  = math.NaN
	negZero func() float64                  = func() float64 { return math.Copysign(0, -1) }
)

func strconvAppendInt(dst []byte, v int64) []byte {
	return appInt(dst, v, 10)
}
