package gadt

import (
	"fmt"
	"reflect"
)

// Route pairs a Shape with a handler whose argument list is exactly
// the shape's Variable types, in order, and whose single return value
// is of type R, the result type shared by every route in a Router[R].
type Route[R any] struct {
	shape        Shape
	handler      reflect.Value
	argWitnesses []*Witness
}

// NewRoute builds a Route[R], checking the handler-arity/type
// correspondence immediately: handler must be a func, its parameter
// count must equal the number of Variable descriptors in shape, each
// parameter's type must equal the corresponding Variable's decoded
// type, and it must return exactly one value of type R. Any mismatch
// aborts construction with an error wrapping one of ErrHandlerNotFunc,
// ErrHandlerArity, ErrHandlerArgType, or ErrHandlerResult; none of this
// is deferred to match time.
func NewRoute[R any](shape Shape, handler any) (*Route[R], error) {
	rv := reflect.ValueOf(handler)
	if rv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: got %T", ErrHandlerNotFunc, handler)
	}
	rt := rv.Type()

	witnesses := shape.variableWitnesses()
	if rt.NumIn() != len(witnesses) {
		return nil, fmt.Errorf("%w: handler has %d parameter(s), shape declares %d variable(s)",
			ErrHandlerArity, rt.NumIn(), len(witnesses))
	}
	for i, w := range witnesses {
		if rt.In(i) != w.Type() {
			return nil, fmt.Errorf("%w: parameter %d is %s, shape declares %s (%s)",
				ErrHandlerArgType, i, rt.In(i), w.Type(), w)
		}
	}

	var want R
	wantType := reflect.TypeOf(&want).Elem()
	if rt.NumOut() != 1 {
		return nil, fmt.Errorf("%w: handler returns %d values, want exactly 1", ErrHandlerResult, rt.NumOut())
	}
	if rt.Out(0) != wantType {
		return nil, fmt.Errorf("%w: handler returns %s, router result type is %s", ErrHandlerResult, rt.Out(0), wantType)
	}

	return &Route[R]{shape: shape, handler: rv, argWitnesses: witnesses}, nil
}

// MustNewRoute is NewRoute, panicking on error. Useful at package
// init time where a malformed route is a programming error the
// compiler could not catch.
func MustNewRoute[R any](shape Shape, handler any) *Route[R] {
	r, err := NewRoute[R](shape, handler)
	if err != nil {
		panic(err)
	}
	return r
}

// apply walks the route's argWitnesses and the collected bundle in
// lockstep, verifying each pair's witnesses match before unboxing,
// then invokes the handler by reflection. Witness mismatch or a bundle
// whose length disagrees with the shape's arity means the trie walk
// produced an inconsistent bundle for this route, a programming error
// treated as a fatal assertion rather than a recoverable condition.
func (rt *Route[R]) apply(bundle []boundValue) R {
	if len(bundle) != len(rt.argWitnesses) {
		panic(fmt.Sprintf("gadt: matched route with %d bound value(s) but shape declares %d variable(s)",
			len(bundle), len(rt.argWitnesses)))
	}
	args := make([]reflect.Value, len(bundle))
	for i, b := range bundle {
		if !b.witness.Equal(rt.argWitnesses[i]) {
			panic(fmt.Sprintf("gadt: witness mismatch at argument %d: trie walk invariant violated (got %s, want %s)",
				i, b.witness, rt.argWitnesses[i]))
		}
		args[i] = reflect.ValueOf(b.value)
	}
	out := rt.handler.Call(args)
	// Safe: NewRoute verified out[0]'s static type equals R at
	// construction time, so this assertion cannot fail.
	return out[0].Interface().(R)
}
