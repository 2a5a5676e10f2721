package gadtdsl

import "errors"

// Parse-time diagnostics. Parse never panics on malformed input; every
// failure is reported as one of these, wrapped with the offending
// fragment via fmt.Errorf("...: %w", ...).
var (
	// ErrEmptyPattern indicates an empty pattern string.
	ErrEmptyPattern = errors.New("gadtdsl: empty pattern")

	// ErrMissingLeadingSlash indicates a pattern whose path component
	// does not begin with "/".
	ErrMissingLeadingSlash = errors.New("gadtdsl: pattern must start with '/'")

	// ErrTokenAfterTerminal indicates a path component declared after
	// a terminal "**" or trailing "/".
	ErrTokenAfterTerminal = errors.New("gadtdsl: no path component may follow '**' or a trailing '/'")

	// ErrTerminalWithQuery indicates a pattern combining a terminal
	// path ending ("**" or a trailing "/") with a query component. A
	// Shape's terminal descriptor is always its last one, since
	// gadt.Shape only ever grows by prepending onto a terminator, so
	// there is no way to place query-derived descriptors after it.
	ErrTerminalWithQuery = errors.New("gadtdsl: '**' or a trailing '/' cannot be combined with a query component")

	// ErrMalformedQueryPair indicates a "k=v" query component with more
	// than one "=".
	ErrMalformedQueryPair = errors.New("gadtdsl: malformed query pair")

	// ErrUnknownDecoder indicates a ":Name" variable reference that is
	// neither a built-in keyword nor registered in the Registry passed
	// to Parse.
	ErrUnknownDecoder = errors.New("gadtdsl: unknown decoder")

	// ErrDecoderNameCase indicates a ":name" variable reference whose
	// name is lower-case and not one of the built-in keywords. User
	// decoder references must begin with an upper-case letter.
	ErrDecoderNameCase = errors.New("gadtdsl: user decoder name must begin with an upper-case letter")
)
