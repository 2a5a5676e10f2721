package gadt

import "strings"

// Router is a compiled, immutable router over routes all returning R.
// It is safe to share across goroutines without synchronization: every
// field reachable from root is written exactly once, during Compile,
// and never again.
type Router[R any] struct {
	root *compiledNode[R]
}

// Option configures Compile.
type Option func(*compileConfig)

type compileConfig struct {
	logger Logger
}

// WithLogger injects a Logger that receives non-fatal build-time
// notices. Compile behaves identically whether one is supplied or not.
func WithLogger(l Logger) Option {
	return func(c *compileConfig) { c.logger = l }
}

// Compile builds an immutable Router from a list of routes, inserting
// them in order. Insertion order is the only thing that determines
// match-time precedence; calling Compile twice with the same routes in
// the same order yields observationally identical match behavior.
func Compile[R any](routes []*Route[R], opts ...Option) *Router[R] {
	cfg := compileConfig{logger: nopLogger{}}
	for _, o := range opts {
		o(&cfg)
	}

	root := &node[R]{}
	for _, r := range routes {
		root.insert(r.shape.String(), r.shape.descs, r, cfg.logger)
	}
	return &Router[R]{root: root.compile()}
}

// Match tokenizes uri and walks the compiled trie. It returns (zero,
// false) for an unparseable/empty URI or when no route accepts the
// token stream, and otherwise returns the single accepting route's
// handler result. Match is a pure, deterministic function of (Router,
// uri) that terminates in O(tokens x max-fanout), since walk
// (match.go) never revisits a committed edge.
func (r *Router[R]) Match(uri string) (R, bool) {
	tokens, ok := tokenize(uri)
	if !ok {
		var zero R
		return zero, false
	}
	return r.root.walk(tokens, nil)
}

// RouteVisitor receives one (path, route) pair per Router.Walk call,
// per registered route.
type RouteVisitor[R any] interface {
	Visit(path string, route *Route[R])
}

// RouteVisitFunc adapts a plain function to RouteVisitor.
type RouteVisitFunc[R any] func(path string, route *Route[R])

// Visit implements RouteVisitor.
func (f RouteVisitFunc[R]) Visit(path string, route *Route[R]) { f(path, route) }

// Walk visits every route registered in the router, in the trie's
// depth-first, edge-order traversal, reporting each one's descriptor
// path rendered the way Shape.String does.
func (r *Router[R]) Walk(v RouteVisitor[R]) {
	r.root.visit("/", v)
}

func (n *compiledNode[R]) visit(path string, v RouteVisitor[R]) {
	if n.route != nil {
		v.Visit(path, n.route)
	}
	for _, e := range n.edges {
		child := path
		if !strings.HasSuffix(child, "/") {
			child += "/"
		}
		child += e.desc.label()
		e.child.visit(child, v)
	}
}
