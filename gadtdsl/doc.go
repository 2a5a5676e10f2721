// Package gadtdsl is a thin textual front-end over package gadt. It
// parses pattern strings such as "/home/:int/" or "/contact/*/:int"
// into a gadt.Shape, so that callers who want a pattern-string API
// (rather than gadt's nested Lit/Var constructors) can get one without
// the core package knowing this syntax exists.
//
// The core package never imports gadtdsl: the dependency runs one way,
// front-end to core, exactly as a syntactic collaborator should.
package gadtdsl
