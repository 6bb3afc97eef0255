package extract

import "github.com/leofalp/jsonshape/core/jsonvalue"

// Query describes a bounded, tiered key search over a parsed document.
type Query struct {
	// Tiers are key lists in priority order. At each object every key of the
	// first tier is tried before any key of the second, and so on.
	Tiers [][]string
	// MaxDepth is the deepest level inspected; the root is level 0.
	MaxDepth int
	// Accept decides whether the value under a matching key is a hit. A nil
	// Accept takes any truthy value.
	Accept func(jsonvalue.Value) bool
}

// Find walks root depth-first and returns the first accepted value.
//
// At each object the tiers are checked in order; if nothing is accepted the
// search descends into every nested object or array, left to right in
// document order. Arrays are traversed but have no keys of their own.
func (q Query) Find(root jsonvalue.Value) (jsonvalue.Value, bool) {
	accept := q.Accept
	if accept == nil {
		accept = jsonvalue.Value.Truthy
	}
	return q.find(root, 0, accept)
}

func (q Query) find(v jsonvalue.Value, depth int, accept func(jsonvalue.Value) bool) (jsonvalue.Value, bool) {
	if depth > q.MaxDepth || !v.IsStructured() {
		return jsonvalue.Value{}, false
	}

	if v.Kind() == jsonvalue.Object {
		for _, tier := range q.Tiers {
			for _, key := range tier {
				if candidate, ok := v.Get(key); ok && accept(candidate) {
					return candidate, true
				}
			}
		}
	}

	for _, child := range v.Children() {
		if found, ok := q.find(child, depth+1, accept); ok {
			return found, true
		}
	}
	return jsonvalue.Value{}, false
}
