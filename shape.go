package gadt

import "strings"

// descKind discriminates the four component descriptor forms: literal,
// variable, trailing slash, and full splat. There is no descriptor for
// the End terminator: End is represented by the absence of any further
// descriptor (an empty Shape), since it consumes no token and
// contributes no trie edge.
type descKind uint8

const (
	descLiteral descKind = iota
	descVariable
	descTrailingSlash
	descFullSplat
)

// descriptor is one edge label in the trie: a Literal, a Variable
// (with its decode function boxed to operate on any and its
// Witness retained for dispatch-time verification), a TrailingSlash,
// or a FullSplat.
type descriptor struct {
	kind    descKind
	literal string
	decode  func(string) (any, bool)
	witness *Witness
}

// equal reports whether two descriptors label the same trie edge:
// literals compare by string equality, variables by witness identity,
// and TrailingSlash and FullSplat are each equal to themselves
// regardless of how they were constructed.
func (d descriptor) equal(other descriptor) bool {
	if d.kind != other.kind {
		return false
	}
	switch d.kind {
	case descLiteral:
		return d.literal == other.literal
	case descVariable:
		return d.witness.Equal(other.witness)
	default:
		return true
	}
}

// Shape is a typed, ordered sequence of descriptors describing one
// route's URI structure. Each Variable descriptor it carries
// corresponds to one argument of the route's handler, in left-to-right
// order; that correspondence is checked when the Shape is paired with
// a handler in NewRoute, not at match time.
type Shape struct {
	descs []descriptor
}

// End returns the shape of a route with no further path components.
// A route built on End matches only when the token stream is
// exhausted at this point in the trie.
func End() Shape {
	return Shape{}
}

// TrailingSlash returns the shape ending in a descriptor that matches
// the single empty token produced by a URI ending in "/".
func TrailingSlash() Shape {
	return Shape{descs: []descriptor{{kind: descTrailingSlash}}}
}

// FullSplat returns the shape ending in a descriptor that matches the
// rest of the token stream, however many tokens remain, as long as at
// least one token is left at its position. A token stream that is
// already exhausted there ends the walk at the preceding node and is
// not matched by FullSplat. It is always the last descriptor in any
// Shape it appears in,
// since shapes are built bottom-up by prepending onto rest (see
// prepend) and nothing in this package ever appends after a
// terminator.
func FullSplat() Shape {
	return Shape{descs: []descriptor{{kind: descFullSplat}}}
}

// Lit prepends a Literal(s) descriptor onto rest.
func Lit(s string, rest Shape) Shape {
	return prepend(descriptor{kind: descLiteral, literal: s}, rest)
}

// Var prepends a Variable(D) descriptor onto rest. The resulting
// Shape's handler arity (enforced in NewRoute) grows by one argument
// of type T, contributed at this descriptor's position in left-to-
// right order.
func Var[T any](d Decoder[T], rest Shape) Shape {
	decode := func(tok string) (any, bool) {
		v, ok := d.decode(tok)
		return v, ok
	}
	return prepend(descriptor{kind: descVariable, decode: decode, witness: d.witness}, rest)
}

func prepend(d descriptor, rest Shape) Shape {
	descs := make([]descriptor, 0, len(rest.descs)+1)
	descs = append(descs, d)
	descs = append(descs, rest.descs...)
	return Shape{descs: descs}
}

// variableWitnesses returns, in left-to-right order, the witness of
// every Variable descriptor in the shape.
func (s Shape) variableWitnesses() []*Witness {
	var out []*Witness
	for _, d := range s.descs {
		if d.kind == descVariable {
			out = append(out, d.witness)
		}
	}
	return out
}

// label renders one descriptor the way it would appear in a path
// pattern: a Literal renders as itself, a Variable as ":" plus its
// decoder's name, FullSplat as "**", and TrailingSlash as the empty
// string (it contributes only the slash that precedes it).
func (d descriptor) label() string {
	switch d.kind {
	case descLiteral:
		return d.literal
	case descVariable:
		return ":" + d.witness.String()
	case descFullSplat:
		return "**"
	default:
		return ""
	}
}

// String renders the shape as a "/"-joined diagnostic path, purely for
// logging and Router.Walk. It is not parsed back by anything in this
// package.
func (s Shape) String() string {
	var buf strings.Builder
	buf.WriteByte('/')
	for i, d := range s.descs {
		if i > 0 {
			buf.WriteByte('/')
		}
		buf.WriteString(d.label())
	}
	return buf.String()
}
