package export

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archetype-labs/archgraph/internal/graph"
)

// hexagonalFixture builds a small three-layer graph: Adapter implements
// Port, Port depends on Domain.
func hexagonalFixture(t *testing.T) *graph.Graph {
	t.Helper()

	entity := graph.NewNode(graph.LayerDomain, graph.RoleAggregate, "Order", "shop/domain")
	port := graph.NewNode(graph.LayerPort, graph.RoleRepository, "OrderRepository", "shop/ports")
	adapter := graph.NewNode(graph.LayerAdapter, graph.RoleAdapter, "PgOrderRepository", "shop/adapters")

	g, err := graph.NewBuilder().
		Description("test architecture").
		AddNodes([]graph.Node{entity, port, adapter}).
		AddEdge(graph.NewEdge(port.ID, entity.ID, graph.RelationDepends)).
		AddEdge(graph.NewEdge(adapter.ID, port.ID, graph.RelationImplements)).
		BuildValidated()
	require.NoError(t, err)
	return g
}

func TestMermaid(t *testing.T) {
	out := Mermaid(hexagonalFixture(t))

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, "subgraph Domain")
	assert.Contains(t, out, "subgraph Port")
	assert.Contains(t, out, "subgraph Adapter")
	assert.Contains(t, out, `["Order"]`)
	assert.Contains(t, out, "-->|Depends|")
	assert.Contains(t, out, "-->|Implements|")
}

func TestMermaid_Deterministic(t *testing.T) {
	g := hexagonalFixture(t)
	assert.Equal(t, Mermaid(g), Mermaid(g), "output must not depend on map iteration order")
}

func TestMermaid_SkipsDanglingEdges(t *testing.T) {
	entity := graph.NewNode(graph.LayerDomain, graph.RoleEntity, "Order", "domain")
	g := graph.NewBuilder().
		AddNode(entity).
		AddEdge(graph.NewEdge(entity.ID, graph.NodeIDFromName("Missing"), graph.RelationDepends)).
		Build()

	out := Mermaid(g)
	assert.NotContains(t, out, "-->", "dangling edges are omitted from the diagram")
}

func TestDOT(t *testing.T) {
	out := DOT(hexagonalFixture(t))

	assert.True(t, strings.HasPrefix(out, "digraph architecture {"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
	assert.Contains(t, out, `label="Domain"`)
	assert.Contains(t, out, "Order\\n(Aggregate)")
	assert.Contains(t, out, `[label="Implements"]`)
}

func TestBuildContext(t *testing.T) {
	g := hexagonalFixture(t)

	doc, err := BuildContext(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, "test architecture", doc.Description)
	assert.NotEmpty(t, doc.GeneratedAt)
	assert.Len(t, doc.Components, 3)
	assert.Len(t, doc.Relationships, 2)

	assert.Empty(t, doc.Analysis.Cycles)
	assert.Equal(t, 1, doc.Analysis.LeafCount, "Order has no outgoing edges")
	assert.Equal(t, 1, doc.Analysis.RootCount, "PgOrderRepository has no incoming edges")

	assert.Empty(t, doc.Validation.LayerViolations)
	assert.Empty(t, doc.Validation.UnimplementedPorts)
	assert.Empty(t, doc.Validation.Smells)

	require.Len(t, doc.Patterns, 1)
	assert.Equal(t, graph.PatternRepository, doc.Patterns[0].Kind)
}

func TestBuildContext_ReportsProblems(t *testing.T) {
	// Domain depending on Adapter is a layer violation; the two nodes also
	// form a cycle.
	domain := graph.NewNode(graph.LayerDomain, graph.RoleEntity, "Order", "domain")
	adapter := graph.NewNode(graph.LayerAdapter, graph.RoleAdapter, "Mailer", "adapters")

	g := graph.NewBuilder().
		AddNodes([]graph.Node{domain, adapter}).
		AddEdge(graph.NewEdge(domain.ID, adapter.ID, graph.RelationDepends)).
		AddEdge(graph.NewEdge(adapter.ID, domain.ID, graph.RelationDepends)).
		Build()

	doc, err := BuildContext(context.Background(), g)
	require.NoError(t, err)

	assert.Len(t, doc.Analysis.Cycles, 1)
	assert.Len(t, doc.Validation.LayerViolations, 1)
	require.NotEmpty(t, doc.Validation.Smells)
	assert.Equal(t, graph.SmellCircularDependency, doc.Validation.Smells[0].Kind)
}

func TestContextJSON(t *testing.T) {
	data, err := ContextJSON(context.Background(), hexagonalFixture(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "test architecture", decoded["description"])
}
