//go:build ber_trace

package ber

import (
	"fmt"
	"os"
)

/*
trace_on.go is the traced build of the debug hook, selected with
-tags ber_trace. Grounded on the teacher's trc_on.go: writes one line per
enter/exit to stderr, kept deliberately dumb (no buffering, no levels)
since it exists purely to chase down a misbehaving recursion guard or a
misparsed header during development.
*/

func traceEnter(op string, depth int) {
	fmt.Fprintf(os.Stderr, "ber: enter %s depth=%d\n", op, depth)
}

func traceExit(op string, n int, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "ber: exit %s err=%v\n", op, err)
		return
	}
	fmt.Fprintf(os.Stderr, "ber: exit %s n=%d\n", op, n)
}
