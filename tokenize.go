package gadt

import "strings"

// tokenize splits a URI into the token stream the trie walk consumes.
// It returns (nil, false) for an empty (post-trim) URI.
//
// Path tokens: the path is split on "/" after stripping exactly one
// leading "/". A path of exactly "/" (nothing after the leading slash)
// yields zero path tokens, so it matches the End root route rather
// than requiring a TrailingSlash descriptor; any other path's
// remainder is split on "/" in the ordinary way, which naturally
// yields a trailing "" token when the path ends in "/".
//
// Query tokens: each "k=v" pair flattens to [k, v]; a bare "k" (no
// "=") flattens to [k]. Query tokens are appended after path tokens.
func tokenize(uri string) ([]string, bool) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, false
	}

	path := uri
	query := ""
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		path, query = uri[:i], uri[i+1:]
	}

	var tokens []string
	if rest, ok := strings.CutPrefix(path, "/"); ok {
		if rest != "" {
			tokens = append(tokens, strings.Split(rest, "/")...)
		}
	} else if path != "" {
		// No leading slash: tokenize by segment without dropping the
		// first one, so "foo/bar" yields the same tokens as "/foo/bar".
		tokens = append(tokens, strings.Split(path, "/")...)
	}

	if query != "" {
		for _, pair := range strings.Split(query, "&") {
			if pair == "" {
				continue
			}
			if i := strings.IndexByte(pair, '='); i >= 0 {
				tokens = append(tokens, pair[:i], pair[i+1:])
			} else {
				tokens = append(tokens, pair)
			}
		}
	}

	return tokens, true
}
