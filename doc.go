// Package gadt is a typed URI router: it matches request paths
// (with an optional "?k=v&..." query component) against a statically
// declared routing table and dispatches to a handler whose argument
// list is derived from the path's variable components.
//
// A route is a Shape paired with a handler (NewRoute). A Shape is
// built bottom-up from a terminator:
//
//	home := gadt.Lit("home", gadt.TrailingSlash())
//	productID := gadt.Lit("home", gadt.Var(gadt.Int, gadt.TrailingSlash()))
//
// Routes compile into an immutable Router[R], where R is the result
// type every route's handler must return:
//
//	r, _ := gadt.NewRoute[string](productID, func(id int) string {
//		return fmt.Sprintf("Product Page. Product Id : %d", id)
//	})
//	router := gadt.Compile([]*gadt.Route[string]{r})
//	result, ok := router.Match("/home/100001/")
//
// Matching is pure, deterministic, and O(tokens x max-fanout) in the
// URI's length: edges are tried in declaration order and the first one that
// accepts a token is committed to permanently. There is no
// backtracking across decoders once one accepts (see Router.Match).
package gadt
