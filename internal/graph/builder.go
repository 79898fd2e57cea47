package graph

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors returned by Builder.Validate. Callers can match them
// with errors.Is; the wrapped message names the offending edge.
var (
	ErrMissingSourceNode = errors.New("edge references missing source node")
	ErrMissingTargetNode = errors.New("edge references missing target node")
)

// Builder accumulates nodes and edges and produces an immutable Graph.
// It is a single-owner object: build it up on one goroutine, then hand the
// resulting Graph around freely. All append methods return the receiver
// for chaining.
type Builder struct {
	nodes      []Node
	edges      []Edge
	desc       string
	attributes map[string]string
}

// NewBuilder returns an empty Builder with a default description.
func NewBuilder() *Builder {
	return &Builder{desc: "Architecture Graph"}
}

// Description sets the graph description recorded in the metadata.
func (b *Builder) Description(desc string) *Builder {
	b.desc = desc
	return b
}

// Attribute records a key/value pair in the graph metadata.
func (b *Builder) Attribute(key, value string) *Builder {
	if b.attributes == nil {
		b.attributes = make(map[string]string)
	}
	b.attributes[key] = value
	return b
}

// AddNode appends a node.
func (b *Builder) AddNode(node Node) *Builder {
	b.nodes = append(b.nodes, node)
	return b
}

// AddNodes appends a batch of nodes.
func (b *Builder) AddNodes(nodes []Node) *Builder {
	b.nodes = append(b.nodes, nodes...)
	return b
}

// AddEdge appends an edge.
func (b *Builder) AddEdge(edge Edge) *Builder {
	b.edges = append(b.edges, edge)
	return b
}

// AddEdges appends a batch of edges.
func (b *Builder) AddEdges(edges []Edge) *Builder {
	b.edges = append(b.edges, edges...)
	return b
}

// Build produces the immutable Graph snapshot. It always succeeds: edges
// referencing absent nodes are kept as-is (integrity is Validate's
// concern, not a stored invariant). A later node with the same ID as an
// earlier one overwrites it in the node table.
func (b *Builder) Build() *Graph {
	nodes := make(map[NodeID]Node, len(b.nodes))
	for _, n := range b.nodes {
		nodes[n.ID] = n
	}

	edges := make([]Edge, len(b.edges))
	copy(edges, b.edges)

	return &Graph{
		nodes: nodes,
		edges: edges,
		meta: Metadata{
			Description: b.desc,
			CreatedAt:   time.Now().UTC(),
			Version:     1,
			Attributes:  b.attributes,
		},
	}
}

// Validate checks that every edge references accumulated nodes on both
// ends. It fails fast: the first dangling edge aborts with a single error
// identifying the edge and which endpoint is missing.
func (b *Builder) Validate() error {
	ids := make(map[NodeID]bool, len(b.nodes))
	for _, n := range b.nodes {
		ids[n.ID] = true
	}

	for _, e := range b.edges {
		if !ids[e.Source] {
			return fmt.Errorf("%w: edge %s -> %s (%s)", ErrMissingSourceNode, e.Source, e.Target, e.Kind)
		}
		if !ids[e.Target] {
			return fmt.Errorf("%w: edge %s -> %s (%s)", ErrMissingTargetNode, e.Source, e.Target, e.Kind)
		}
	}

	return nil
}

// BuildValidated validates and then builds. On validation failure no
// Graph is produced.
func (b *Builder) BuildValidated() (*Graph, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b.Build(), nil
}
