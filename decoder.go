package gadt

import (
	"reflect"
	"strconv"
)

// Decoder is a named, typed parser from a single path/query token to
// an optional value of type T. decode must be total and pure: it
// either returns (v, true) or (_, false), where the value returned
// with false is ignored, and must never panic on malformed input. An unparseable token is simply a non-match for the
// edge this decoder labels, not an error.
type Decoder[T any] struct {
	name    string
	decode  func(string) (T, bool)
	witness *Witness
}

// NewDecoder constructs a user-defined Decoder[T], minting it a fresh
// Witness. Two decoders built from separate NewDecoder calls never
// compare equal as trie edges even if they share T and produce
// identical values, because each call allocates its own witness.
func NewDecoder[T any](name string, decode func(string) (T, bool)) Decoder[T] {
	var zero T
	return Decoder[T]{
		name:    name,
		decode:  decode,
		witness: newWitness(reflect.TypeOf(zero), name),
	}
}

// Name returns the decoder's diagnostic name.
func (d Decoder[T]) Name() string { return d.name }

// Witness returns the decoder's type witness.
func (d Decoder[T]) Witness() *Witness { return d.witness }

// Decode applies the decoder to a single token.
func (d Decoder[T]) Decode(token string) (T, bool) { return d.decode(token) }

// Built-in decoders, one canonical construction per primitive type.
// Every route that declares ":int" shares the very same Witness, so
// two separately-built Variable(Int) descriptors compare equal as trie
// edges and share a sub-trie.
var (
	// Int decodes base-10 signed integers via strconv.Atoi.
	Int = NewDecoder("int", func(s string) (int, bool) {
		v, err := strconv.Atoi(s)
		return v, err == nil
	})

	// Int32 decodes base-10 32-bit signed integers.
	Int32 = NewDecoder("int32", func(s string) (int32, bool) {
		v, err := strconv.ParseInt(s, 10, 32)
		return int32(v), err == nil
	})

	// Int64 decodes base-10 64-bit signed integers.
	Int64 = NewDecoder("int64", func(s string) (int64, bool) {
		v, err := strconv.ParseInt(s, 10, 64)
		return v, err == nil
	})

	// Float decodes 64-bit floating point numbers.
	Float = NewDecoder("float", func(s string) (float64, bool) {
		v, err := strconv.ParseFloat(s, 64)
		return v, err == nil
	})

	// Bool decodes the strconv.ParseBool vocabulary (1, t, T, TRUE,
	// true, True, 0, f, F, FALSE, false, False).
	Bool = NewDecoder("bool", func(s string) (bool, bool) {
		v, err := strconv.ParseBool(s)
		return v, err == nil
	})

	// String passes the token through unchanged; it never rejects.
	String = NewDecoder("string", func(s string) (string, bool) {
		return s, true
	})
)
