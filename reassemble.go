package ber

/*
reassemble.go implements constructed-form reassembly (§4.3's "Constructed
encoding" rule shared by BIT STRING, OCTET STRING and every string type):
a constructed element's content is itself a sequence of child elements,
all carrying the same class and tag as the parent, whose primitive
leaves are concatenated in order to recover the logical value.

Grounded on the teacher's bs.go/oct.go constructed-assembly loops and
pkt.go's parseFullBytes, generalized into one shared routine so every
C3 type with a constructed form reuses the same recursion-guarded walk.
*/

// reassembleConstructed concatenates the primitive leaves of a
// constructed element sharing e's class and tag, recursing through any
// further nested constructed children up to budget.
func reassembleConstructed(e Element, op string, budget int) ([]byte, error) {
	nextBudget, err := depthCheck(budget, op)
	if err != nil {
		return nil, err
	}

	var out []byte
	rest := e.Content
	for len(rest) > 0 {
		child, n, perr := parseElement(rest, nextBudget)
		if perr != nil {
			return nil, perr
		}
		if child.Class != e.Class || child.Tag != e.Tag {
			return nil, newErr(Construction, op, "", "constructed child has mismatched class/tag")
		}
		if child.Compound {
			sub, serr := reassembleConstructed(child, op, nextBudget)
			if serr != nil {
				return nil, serr
			}
			out = append(out, sub...)
		} else {
			out = append(out, child.Content...)
		}
		rest = rest[n:]
	}
	return out, nil
}
