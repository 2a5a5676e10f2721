package gadt

import "reflect"

// Witness is an opaque per-type identity. Two witnesses compare equal
// (by ==) iff they were produced by the same construction act: the
// same call to NewDecoder, or the same built-in decoder variable.
//
// A value boxed alongside a Witness can later be recovered without a
// runtime cast that could fail silently: the recovering code compares
// witnesses first and only then unboxes, so a mismatch is caught
// before the unbox rather than by it.
type Witness struct {
	rt   reflect.Type
	name string
}

func newWitness(rt reflect.Type, name string) *Witness {
	return &Witness{rt: rt, name: name}
}

// String returns the decoder name the witness was created with. It is
// for diagnostics only; it plays no part in equality.
func (w *Witness) String() string {
	if w == nil {
		return "<nil witness>"
	}
	return w.name
}

// Type returns the reflect.Type this witness was minted for.
func (w *Witness) Type() reflect.Type {
	return w.rt
}

// Equal reports whether w and other were produced by the same
// construction act. Pointer identity is sufficient and exact: every
// NewDecoder call (and each built-in decoder's package-level
// initialization) allocates a fresh *Witness.
func (w *Witness) Equal(other *Witness) bool {
	return w == other
}
