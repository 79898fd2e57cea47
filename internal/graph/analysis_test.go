package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// domainNodes creates n Domain/Entity nodes named by the given names.
func domainNodes(names ...string) []Node {
	out := make([]Node, len(names))
	for i, name := range names {
		out[i] = NewNode(LayerDomain, RoleEntity, name, "domain")
	}
	return out
}

func TestDetectCycles_Acyclic(t *testing.T) {
	nodes := domainNodes("A", "B", "C", "D")
	// Diamond: A->B, A->C, B->D, C->D. No back-edges.
	g := buildGraph(t, nodes, []Edge{
		NewEdge(nodes[0].ID, nodes[1].ID, RelationDepends),
		NewEdge(nodes[0].ID, nodes[2].ID, RelationDepends),
		NewEdge(nodes[1].ID, nodes[3].ID, RelationDepends),
		NewEdge(nodes[2].ID, nodes[3].ID, RelationDepends),
	})

	assert.Empty(t, g.Analysis().DetectCycles())
}

func TestDetectCycles_Triangle(t *testing.T) {
	nodes := domainNodes("A", "B", "C")
	g := buildGraph(t, nodes, []Edge{
		NewEdge(nodes[0].ID, nodes[1].ID, RelationDepends),
		NewEdge(nodes[1].ID, nodes[2].ID, RelationDepends),
		NewEdge(nodes[2].ID, nodes[0].ID, RelationDepends),
	})

	cycles := g.Analysis().DetectCycles()
	require.Len(t, cycles, 1)
	assert.ElementsMatch(t, []NodeID{nodes[0].ID, nodes[1].ID, nodes[2].ID}, cycles[0])
}

func TestDetectCycles_SelfLoop(t *testing.T) {
	nodes := domainNodes("A")
	g := buildGraph(t, nodes, []Edge{
		NewEdge(nodes[0].ID, nodes[0].ID, RelationDepends),
	})

	cycles := g.Analysis().DetectCycles()
	require.Len(t, cycles, 1)
	assert.Equal(t, []NodeID{nodes[0].ID}, cycles[0])
}

func TestDetectCycles_CycleInTraversalOrder(t *testing.T) {
	// The reported cycle is the path suffix from the first occurrence of
	// the back-edge target, so members appear in traversal order.
	nodes := domainNodes("A", "B", "C")
	g := buildGraph(t, nodes, []Edge{
		NewEdge(nodes[0].ID, nodes[1].ID, RelationDepends),
		NewEdge(nodes[1].ID, nodes[2].ID, RelationDepends),
		NewEdge(nodes[2].ID, nodes[1].ID, RelationDepends),
	})

	cycles := g.Analysis().DetectCycles()
	require.Len(t, cycles, 1)
	assert.ElementsMatch(t, []NodeID{nodes[1].ID, nodes[2].ID}, cycles[0], "A is not part of the B<->C cycle")
}

func TestCoupling_OutgoingOnly(t *testing.T) {
	nodes := domainNodes("A", "B")
	g := buildGraph(t, nodes, []Edge{
		NewEdge(nodes[0].ID, nodes[1].ID, RelationDepends),
	})

	m, ok := g.Analysis().Coupling(nodes[0].ID)
	require.True(t, ok)
	assert.Equal(t, 0, m.Afferent)
	assert.Equal(t, 1, m.Efferent)
	assert.Equal(t, 1.0, m.Instability)
}

func TestCoupling_IsolatedNode(t *testing.T) {
	nodes := domainNodes("A")
	g := buildGraph(t, nodes, nil)

	m, ok := g.Analysis().Coupling(nodes[0].ID)
	require.True(t, ok)
	assert.Equal(t, 0, m.Afferent)
	assert.Equal(t, 0, m.Efferent)
	assert.Equal(t, 0.0, m.Instability, "isolated node is 0.0, not NaN")
}

func TestCoupling_Mixed(t *testing.T) {
	nodes := domainNodes("A", "B", "C")
	// B has 1 incoming (from A) and 2 outgoing (to C twice, different kinds).
	g := buildGraph(t, nodes, []Edge{
		NewEdge(nodes[0].ID, nodes[1].ID, RelationDepends),
		NewEdge(nodes[1].ID, nodes[2].ID, RelationDepends),
		NewEdge(nodes[1].ID, nodes[2].ID, RelationInvokes),
	})

	m, ok := g.Analysis().Coupling(nodes[1].ID)
	require.True(t, ok)
	assert.Equal(t, 1, m.Afferent)
	assert.Equal(t, 2, m.Efferent)
	assert.InDelta(t, 2.0/3.0, m.Instability, 1e-9)
}

func TestCoupling_AbsentNode(t *testing.T) {
	g := buildGraph(t, domainNodes("A"), nil)
	_, ok := g.Analysis().Coupling(NodeIDFromName("Nope"))
	assert.False(t, ok)
}

func TestLeafAndRootNodes(t *testing.T) {
	nodes := domainNodes("A", "B", "C")
	// A -> B -> C: A is a root, C is a leaf, B is neither.
	g := buildGraph(t, nodes, []Edge{
		NewEdge(nodes[0].ID, nodes[1].ID, RelationDepends),
		NewEdge(nodes[1].ID, nodes[2].ID, RelationDepends),
	})

	a := g.Analysis()

	leaves := a.LeafNodes()
	require.Len(t, leaves, 1)
	assert.Equal(t, "C", leaves[0].TypeName)

	roots := a.RootNodes()
	require.Len(t, roots, 1)
	assert.Equal(t, "A", roots[0].TypeName)
}
