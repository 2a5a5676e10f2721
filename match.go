package gadt

// boundValue is one entry of the decoded value bundle collected during
// a trie walk: the witness of the Variable descriptor that produced
// it, paired with the decoded value boxed as any. Route.apply checks
// the witness before unboxing.
type boundValue struct {
	witness *Witness
	value   any
}

// walk is the sole place backtracking is deliberately absent: once an
// edge accepts the head token, walk commits to it and returns whatever
// that subtree produces, without trying any sibling edge even if the
// subtree ultimately fails.
func (n *compiledNode[R]) walk(tokens []string, bundle []boundValue) (R, bool) {
	if len(tokens) == 0 {
		if n.route == nil {
			var zero R
			return zero, false
		}
		return n.route.apply(bundle), true
	}

	head, rest := tokens[0], tokens[1:]
	for _, e := range n.edges {
		switch e.desc.kind {
		case descLiteral:
			if e.desc.literal == head {
				return e.child.walk(rest, bundle)
			}
		case descVariable:
			if v, ok := e.desc.decode(head); ok {
				next := append(append([]boundValue(nil), bundle...), boundValue{witness: e.desc.witness, value: v})
				return e.child.walk(rest, next)
			}
			// A failed decode falls through to the next sibling edge.
		case descTrailingSlash:
			if head == "" {
				return e.child.walk(rest, bundle)
			}
		case descFullSplat:
			// Always accepts, and consumes everything remaining.
			return e.child.walk(nil, bundle)
		}
	}

	var zero R
	return zero, false
}
