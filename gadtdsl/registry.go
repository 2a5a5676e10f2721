package gadtdsl

import (
	"fmt"
	"unicode"

	gadt "github.com/bikallem/gadt1"
)

// Registry maps a user decoder's capitalized name, as it appears after
// a ":" in a pattern string, to the Shape constructor it contributes.
// Decoders are generic (gadt.Decoder[T]) and Go has no generic map
// value type that would let a Registry hold them directly, so Register
// closes over the decoder once, at registration time, and stores the
// resulting Shape-building function instead, the same box-at-the-edge
// trick gadt.Var itself uses to erase T into an edge descriptor.
type Registry struct {
	byName map[string]func(gadt.Shape) gadt.Shape
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]func(gadt.Shape) gadt.Shape)}
}

// Register adds a user decoder under name, which must begin with an
// upper-case letter (spec's rule for distinguishing a user decoder
// reference from a built-in keyword, which are all lower-case).
func Register[T any](r *Registry, name string, d gadt.Decoder[T]) error {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return fmt.Errorf("%w: %q", ErrDecoderNameCase, name)
	}
	r.byName[name] = func(rest gadt.Shape) gadt.Shape {
		return gadt.Var(d, rest)
	}
	return nil
}

func (r *Registry) lookup(name string) (func(gadt.Shape) gadt.Shape, bool) {
	if r == nil {
		return nil, false
	}
	build, ok := r.byName[name]
	return build, ok
}
