package gadt

import "errors"

// Construction-time diagnostics. Matching never returns one of these:
// absence of a match is reported as (zero, false), never as an error.
var (
	// ErrHandlerNotFunc indicates that NewRoute was given a non-function
	// handler value.
	ErrHandlerNotFunc = errors.New("gadt: route handler must be a function")

	// ErrHandlerArity indicates the handler's parameter count does not
	// match the number of Variable descriptors in the route's shape.
	ErrHandlerArity = errors.New("gadt: route handler arity does not match shape")

	// ErrHandlerArgType indicates a handler parameter's type does not
	// match the type of the corresponding Variable's decoder.
	ErrHandlerArgType = errors.New("gadt: route handler argument type does not match shape")

	// ErrHandlerResult indicates the handler does not return exactly
	// one value, or returns a value of a type other than the router's
	// declared result type R.
	ErrHandlerResult = errors.New("gadt: route handler result type does not match router")
)
