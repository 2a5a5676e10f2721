package gadt

// node is the mutable builder form of a trie node: an optional route
// and an ordered list of edges. Edge order is preserved across
// insertions and is the match-time tie-break order.
type node[R any] struct {
	route   *Route[R]
	routeAt string // pattern this node's route was registered under, for the warn-on-overwrite notice
	edges   []edge[R]
}

type edge[R any] struct {
	desc  descriptor
	child *node[R]
}

// insert descends from n along descs, creating child nodes for any
// descriptor not yet present among the current node's edges. At the
// end of descs, it sets the node's route, logging (not failing) if a
// route was already registered there.
func (n *node[R]) insert(pattern string, descs []descriptor, route *Route[R], log Logger) {
	if len(descs) == 0 {
		if n.route != nil && log != nil {
			log.Printf("gadt: route %q overwrites route %q registered at the same shape", pattern, n.routeAt)
		}
		n.route = route
		n.routeAt = pattern
		return
	}
	d := descs[0]
	for i := range n.edges {
		if n.edges[i].desc.equal(d) {
			n.edges[i].child.insert(pattern, descs[1:], route, log)
			return
		}
	}
	child := &node[R]{}
	n.edges = append(n.edges, edge[R]{desc: d, child: child})
	child.insert(pattern, descs[1:], route, log)
}

// compiledNode is the frozen form of node: same structure, but built
// once by compile and never mutated afterward. Compiled routers are
// safe to share across goroutines without synchronization, because
// nothing below this type is ever written to again.
type compiledNode[R any] struct {
	route *Route[R]
	edges []compiledEdge[R]
}

type compiledEdge[R any] struct {
	desc  descriptor
	child *compiledNode[R]
}

// compile recursively freezes a builder node into a compiledNode,
// copying the edge list into an exactly-sized slice.
func (n *node[R]) compile() *compiledNode[R] {
	out := &compiledNode[R]{route: n.route}
	if len(n.edges) > 0 {
		out.edges = make([]compiledEdge[R], len(n.edges))
		for i, e := range n.edges {
			out.edges[i] = compiledEdge[R]{desc: e.desc, child: e.child.compile()}
		}
	}
	return out
}
