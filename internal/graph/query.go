package graph

import "strings"

// Query is a fluent node filter over an immutable Graph. Each combinator
// appends a predicate; Execute returns nodes matching all of them. A Query
// never touches edges and never mutates the graph, so it is as freely
// shareable as the graph itself (though each Query value has a single
// owner while being assembled, like a Builder).
type Query struct {
	graph      *Graph
	predicates []func(Node) bool
}

// Query starts a new fluent query over the graph.
func (g *Graph) Query() *Query {
	return &Query{graph: g}
}

// Layer keeps only nodes in the given layer.
func (q *Query) Layer(layer Layer) *Query {
	q.predicates = append(q.predicates, func(n Node) bool {
		return n.Layer == layer
	})
	return q
}

// Role keeps only nodes with the given role.
func (q *Query) Role(role Role) *Query {
	q.predicates = append(q.predicates, func(n Node) bool {
		return n.Role == role
	})
	return q
}

// TypeNameContains keeps only nodes whose type name contains the substring.
func (q *Query) TypeNameContains(substring string) *Query {
	q.predicates = append(q.predicates, func(n Node) bool {
		return strings.Contains(n.TypeName, substring)
	})
	return q
}

// ModulePathContains keeps only nodes whose module path contains the substring.
func (q *Query) ModulePathContains(substring string) *Query {
	q.predicates = append(q.predicates, func(n Node) bool {
		return strings.Contains(n.ModulePath, substring)
	})
	return q
}

// Execute returns every node matching all predicates, in the graph's
// (unstable) iteration order.
func (q *Query) Execute() []Node {
	var out []Node
	for _, n := range q.graph.nodes {
		if q.matches(n) {
			out = append(out, n)
		}
	}
	return out
}

// Count returns the number of matching nodes without materializing them.
func (q *Query) Count() int {
	count := 0
	for _, n := range q.graph.nodes {
		if q.matches(n) {
			count++
		}
	}
	return count
}

// First returns an arbitrary matching node, or false if none match.
func (q *Query) First() (Node, bool) {
	for _, n := range q.graph.nodes {
		if q.matches(n) {
			return n, true
		}
	}
	return Node{}, false
}

func (q *Query) matches(n Node) bool {
	for _, pred := range q.predicates {
		if !pred(n) {
			return false
		}
	}
	return true
}
