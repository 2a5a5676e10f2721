package gadtdsl

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	gadt "github.com/bikallem/gadt1"
)

// componentSpec is one parsed-but-not-yet-built path or query
// component: either a literal token or a variable reference awaiting
// resolution against the built-in keywords and the caller's Registry.
type componentSpec struct {
	literal string
	isVar   bool
	varName string // one of the built-in keywords, "*", or a capitalized user name
}

type terminalKind int

const (
	terminalEnd terminalKind = iota
	terminalTrailingSlash
	terminalFullSplat
)

// Parse parses a pattern string into a gadt.Shape: a leading "/",
// "/"-separated path segments, an optional trailing "/", an optional
// terminal "**", and an optional "?"-prefixed query string of
// "&"-separated "k" or "k=v" pairs. A segment or query value of
// ":name" is a variable: the built-in keywords (int, int32, int64,
// float, bool, string) resolve directly; any other name must be
// registered in reg under an identical, capitalized spelling. A bare
// "*" segment is a single-token wildcard decoded as a string.
//
// Parse never panics; every malformed pattern is reported as an error
// wrapping one of this package's sentinels.
func Parse(pattern string, reg *Registry) (gadt.Shape, error) {
	if pattern == "" {
		return gadt.Shape{}, ErrEmptyPattern
	}

	path := pattern
	rawQuery := ""
	hasQuery := false
	if idx := strings.IndexByte(pattern, '?'); idx >= 0 {
		path, rawQuery = pattern[:idx], pattern[idx+1:]
		hasQuery = true
	}

	if !strings.HasPrefix(path, "/") {
		return gadt.Shape{}, fmt.Errorf("%w: %q", ErrMissingLeadingSlash, pattern)
	}

	pathSpecs, kind, err := parsePath(path)
	if err != nil {
		return gadt.Shape{}, err
	}

	if hasQuery && kind != terminalEnd {
		return gadt.Shape{}, fmt.Errorf("%w: %q", ErrTerminalWithQuery, pattern)
	}

	querySpecs, err := parseQuery(rawQuery)
	if err != nil {
		return gadt.Shape{}, err
	}

	var terminal gadt.Shape
	switch kind {
	case terminalTrailingSlash:
		terminal = gadt.TrailingSlash()
	case terminalFullSplat:
		terminal = gadt.FullSplat()
	default:
		terminal = gadt.End()
	}

	shape, err := buildFromSpecs(querySpecs, terminal, reg)
	if err != nil {
		return gadt.Shape{}, err
	}
	return buildFromSpecs(pathSpecs, shape, reg)
}

// parsePath splits a pattern's path component (everything before an
// optional "?") into component specs and a terminal kind.
func parsePath(path string) ([]componentSpec, terminalKind, error) {
	rest := strings.TrimPrefix(path, "/")
	if rest == "" {
		return nil, terminalEnd, nil
	}

	segs := strings.Split(rest, "/")

	kind := terminalEnd
	switch segs[len(segs)-1] {
	case "":
		kind = terminalTrailingSlash
		segs = segs[:len(segs)-1]
	case "**":
		kind = terminalFullSplat
		segs = segs[:len(segs)-1]
	}

	specs := make([]componentSpec, 0, len(segs))
	for _, seg := range segs {
		if seg == "" || seg == "**" {
			return nil, 0, fmt.Errorf("%w: %q", ErrTokenAfterTerminal, path)
		}
		spec, err := parseSegment(seg)
		if err != nil {
			return nil, 0, err
		}
		specs = append(specs, spec)
	}
	return specs, kind, nil
}

// parseQuery splits a pattern's query component (everything after a
// "?") into component specs: each "k=v" pair contributes a literal key
// spec and a value spec, a bare "k" contributes only a literal key
// spec.
func parseQuery(raw string) ([]componentSpec, error) {
	if raw == "" {
		return nil, nil
	}

	var specs []componentSpec
	for _, pair := range strings.Split(raw, "&") {
		parts := strings.Split(pair, "=")
		switch len(parts) {
		case 1:
			specs = append(specs, componentSpec{literal: parts[0]})
		case 2:
			valSpec, err := parseSegment(parts[1])
			if err != nil {
				return nil, err
			}
			specs = append(specs, componentSpec{literal: parts[0]}, valSpec)
		default:
			return nil, fmt.Errorf("%w: %q", ErrMalformedQueryPair, pair)
		}
	}
	return specs, nil
}

// parseSegment parses a single path segment or query value into a
// componentSpec: "*" is the single-token wildcard, ":name" is a
// variable reference, anything else is a literal.
func parseSegment(seg string) (componentSpec, error) {
	switch {
	case seg == "*":
		return componentSpec{isVar: true, varName: "*"}, nil
	case strings.HasPrefix(seg, ":"):
		name := seg[1:]
		if name == "" {
			return componentSpec{}, fmt.Errorf("%w: %q", ErrUnknownDecoder, seg)
		}
		return componentSpec{isVar: true, varName: name}, nil
	default:
		return componentSpec{literal: seg}, nil
	}
}

// buildFromSpecs folds specs onto terminal in reverse order, so that
// the first spec ends up as the outermost (leftmost, first-matched)
// descriptor, mirroring how gadt.Shape itself is always built
// bottom-up from a terminator via prepend.
func buildFromSpecs(specs []componentSpec, terminal gadt.Shape, reg *Registry) (gadt.Shape, error) {
	shape := terminal
	for i := len(specs) - 1; i >= 0; i-- {
		s := specs[i]
		if !s.isVar {
			shape = gadt.Lit(s.literal, shape)
			continue
		}

		switch s.varName {
		case "*", "string":
			shape = gadt.Var(gadt.String, shape)
		case "int":
			shape = gadt.Var(gadt.Int, shape)
		case "int32":
			shape = gadt.Var(gadt.Int32, shape)
		case "int64":
			shape = gadt.Var(gadt.Int64, shape)
		case "float":
			shape = gadt.Var(gadt.Float, shape)
		case "bool":
			shape = gadt.Var(gadt.Bool, shape)
		default:
			build, ok := reg.lookup(s.varName)
			if !ok {
				if r, _ := utf8.DecodeRuneInString(s.varName); !unicode.IsUpper(r) {
					return gadt.Shape{}, fmt.Errorf("%w: %q", ErrDecoderNameCase, s.varName)
				}
				return gadt.Shape{}, fmt.Errorf("%w: %q", ErrUnknownDecoder, s.varName)
			}
			shape = build(shape)
		}
	}
	return shape, nil
}
