// Package routing implements the path-matching engine used by the
// method router. A Tree holds the patterns registered for a single
// HTTP method and recognizes concrete request paths against them.
package routing

import "strings"

// Params holds the parameter bindings extracted from a matched path,
// keyed by parameter name.
type Params map[string]string

// Match is the outcome of recognizing a path against a Tree.
type Match[V any] struct {
	// Value is the value the matched pattern was registered with.
	Value V

	// Pattern is the template string the path matched.
	Pattern string

	// Params contains the bindings for the pattern's parameter and
	// wildcard segments.
	Params Params
}

// Tree is a segment tree of registered path patterns. Patterns are
// slash-delimited sequences of literal segments, named parameter
// segments (":name"), and a trailing wildcard segment ("*name").
//
// When several patterns could match the same concrete path, the most
// specific one wins: at each position a literal segment beats a
// parameter segment, which beats a wildcard. Precedence is evaluated
// left to right and decided at the first point of divergence, so the
// result never depends on registration order.
//
// Patterns that place a parameter at the same position must agree on
// its name; the first registered name is the one used for extraction.
// Registering an identical pattern twice replaces the earlier value.
type Tree[V any] struct {
	root *node[V]
	size int
}

type node[V any] struct {
	static map[string]*node[V]
	param  *node[V]
	wild   *node[V]

	// name is the binding name on param and wild nodes.
	name string

	pattern  string
	value    V
	terminal bool
}

// NewTree returns an empty pattern tree.
func NewTree[V any]() *Tree[V] {
	return &Tree[V]{root: &node[V]{}}
}

// Add registers a pattern with its value. A wildcard segment ends the
// pattern; anything after it is ignored. Re-adding an identical
// pattern overwrites the stored value.
func (t *Tree[V]) Add(pattern string, value V) {
	n := t.root
segments:
	for _, seg := range splitPath(pattern) {
		switch {
		case strings.HasPrefix(seg, ":"):
			if n.param == nil {
				n.param = &node[V]{name: seg[1:]}
			}
			n = n.param
		case strings.HasPrefix(seg, "*"):
			if n.wild == nil {
				name := seg[1:]
				if name == "" {
					name = "*"
				}
				n.wild = &node[V]{name: name}
			}
			n = n.wild
			break segments
		default:
			if n.static == nil {
				n.static = make(map[string]*node[V])
			}
			child, ok := n.static[seg]
			if !ok {
				child = &node[V]{}
				n.static[seg] = child
			}
			n = child
		}
	}
	if !n.terminal {
		t.size++
	}
	n.terminal = true
	n.pattern = pattern
	n.value = value
}

// Recognize matches a concrete request path against the registered
// patterns. It reports false when no pattern matches; that is the
// only failure mode.
func (t *Tree[V]) Recognize(path string) (Match[V], bool) {
	params := make(Params)
	n := t.root.search(splitPath(path), params)
	if n == nil {
		return Match[V]{}, false
	}
	return Match[V]{Value: n.value, Pattern: n.pattern, Params: params}, true
}

// Len returns the number of registered patterns.
func (t *Tree[V]) Len() int {
	return t.size
}

// search walks the tree trying the most specific branch first and
// backtracking on failure. Parameter bindings are written only after
// a branch has fully matched, so a failed deeper attempt leaves no
// stray entries.
func (n *node[V]) search(segs []string, params Params) *node[V] {
	if len(segs) == 0 {
		if n.terminal {
			return n
		}
		return nil
	}

	seg := segs[0]

	if child, ok := n.static[seg]; ok {
		if r := child.search(segs[1:], params); r != nil {
			return r
		}
	}

	if n.param != nil {
		if r := n.param.search(segs[1:], params); r != nil {
			params[n.param.name] = seg
			return r
		}
	}

	if n.wild != nil && n.wild.terminal {
		params[n.wild.name] = strings.Join(segs, "/")
		return n.wild
	}

	return nil
}

// splitPath breaks a path or pattern into its segments. Leading and
// trailing slashes are not significant: "/a/b/" and "/a/b" are the
// same path.
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
