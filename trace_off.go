//go:build !ber_trace

package ber

/*
trace_off.go is the default (non-traced) build of the debug hook used by
Parse/ToBytes and the recursion guard. Grounded on the teacher's
trc_off.go: both functions compile away to nothing when the ber_trace
build tag is absent.
*/

func traceEnter(op string, depth int) {}
func traceExit(op string, n int, err error) {}
