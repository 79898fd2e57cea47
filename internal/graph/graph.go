package graph

import (
	"fmt"
	"strings"
)

// Graph is the immutable architecture snapshot produced by a Builder.
// Nothing inside it is mutated after construction, so a single *Graph may
// be shared by any number of goroutines without coordination; it is freed
// by the garbage collector once the last holder drops its reference.
//
// All lookups are O(1) on the node table or O(n) linear scans over the
// edge slice. Graphs are architecture-scale (tens to low hundreds of
// components), so no secondary indexes are kept.
type Graph struct {
	nodes map[NodeID]Node
	edges []Edge
	meta  Metadata
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph) IsEmpty() bool {
	return len(g.nodes) == 0
}

// Node returns the node with the given ID. An absent ID is a normal
// empty outcome, not an error.
func (g *Graph) Node(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes. Iteration order follows the underlying map
// and is not stable; callers must not depend on it.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodesByLayer returns all nodes in the given layer.
func (g *Graph) NodesByLayer(layer Layer) []Node {
	var out []Node
	for _, n := range g.nodes {
		if n.Layer == layer {
			out = append(out, n)
		}
	}
	return out
}

// NodesByRole returns all nodes with the given role.
func (g *Graph) NodesByRole(role Role) []Node {
	var out []Node
	for _, n := range g.nodes {
		if n.Role == role {
			out = append(out, n)
		}
	}
	return out
}

// EdgesFrom returns all edges whose source is the given ID.
func (g *Graph) EdgesFrom(id NodeID) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.Source == id {
			out = append(out, e)
		}
	}
	return out
}

// EdgesTo returns all edges whose target is the given ID.
func (g *Graph) EdgesTo(id NodeID) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.Target == id {
			out = append(out, e)
		}
	}
	return out
}

// LayerCount returns the number of distinct layers present in the graph.
func (g *Graph) LayerCount() int {
	layers := make(map[Layer]bool)
	for _, n := range g.nodes {
		layers[n.Layer] = true
	}
	return len(layers)
}

// Metadata returns the graph metadata.
func (g *Graph) Metadata() Metadata {
	return g.meta
}

// Summary renders a human-readable overview of the graph for CLI output.
func (g *Graph) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", g.meta.Description)
	fmt.Fprintf(&sb, "  Nodes: %d\n", g.NodeCount())
	fmt.Fprintf(&sb, "  Edges: %d\n", g.EdgeCount())
	sb.WriteString("\nBy layer:\n")
	for _, layer := range Layers {
		if count := len(g.NodesByLayer(layer)); count > 0 {
			fmt.Fprintf(&sb, "  %s: %d\n", layer, count)
		}
	}
	return sb.String()
}
