package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/archetype-labs/archgraph/internal/export"
	"github.com/archetype-labs/archgraph/internal/graph"
)

// ArchService holds the immutable architecture graph served by the MCP
// tool handlers. The graph never changes after construction, so handlers
// need no locking regardless of how many requests run concurrently.
type ArchService struct {
	graph *graph.Graph
}

// NewArchService creates an ArchService over a built graph.
func NewArchService(g *graph.Graph) *ArchService {
	return &ArchService{graph: g}
}

// QueryComponents filters components by layer, role, and substring
// predicates. Empty fields apply no filter.
func (s *ArchService) QueryComponents(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input QueryComponentsInput,
) (*mcp.CallToolResult, QueryComponentsOutput, error) {
	q := s.graph.Query()
	if input.Layer != "" {
		q = q.Layer(graph.Layer(input.Layer))
	}
	if input.Role != "" {
		q = q.Role(graph.Role(input.Role))
	}
	if input.TypeNameContains != "" {
		q = q.TypeNameContains(input.TypeNameContains)
	}
	if input.ModulePathContains != "" {
		q = q.ModulePathContains(input.ModulePathContains)
	}

	components := q.Execute()
	return nil, QueryComponentsOutput{
		Components: components,
		Total:      len(components),
	}, nil
}

// DetectCycles returns all circular dependencies found in the graph,
// with node IDs resolved to component type names.
func (s *ArchService) DetectCycles(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ DetectCyclesInput,
) (*mcp.CallToolResult, DetectCyclesOutput, error) {
	cycles := s.graph.Analysis().DetectCycles()

	named := make([][]string, len(cycles))
	for i, cycle := range cycles {
		named[i] = make([]string, len(cycle))
		for j, id := range cycle {
			named[i][j] = s.nodeName(id)
		}
	}
	return nil, DetectCyclesOutput{Cycles: named}, nil
}

// CouplingMetrics computes afferent/efferent coupling and instability
// for one component, addressed by type name.
func (s *ArchService) CouplingMetrics(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CouplingMetricsInput,
) (*mcp.CallToolResult, CouplingMetricsOutput, error) {
	if input.TypeName == "" {
		return nil, CouplingMetricsOutput{}, fmt.Errorf("typeName is required")
	}

	id := graph.NodeIDFromName(input.TypeName)
	metrics, ok := s.graph.Analysis().Coupling(id)
	if !ok {
		return nil, CouplingMetricsOutput{}, fmt.Errorf("component not found: %s", input.TypeName)
	}

	return nil, CouplingMetricsOutput{
		TypeName: input.TypeName,
		Metrics:  metrics,
	}, nil
}

// ValidateArchitecture runs layer-dependency validation, port
// implementation checks, and smell detection in one pass.
func (s *ArchService) ValidateArchitecture(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ValidateArchitectureInput,
) (*mcp.CallToolResult, ValidateArchitectureOutput, error) {
	v := s.graph.Validation()
	return nil, ValidateArchitectureOutput{
		LayerViolations:    v.ValidateLayerDependencies(),
		UnimplementedPorts: v.ValidatePortImplementations(),
		Smells:             v.DetectSmells(),
	}, nil
}

// IdentifyPatterns returns all architectural patterns inferred from the
// graph shape.
func (s *ArchService) IdentifyPatterns(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ IdentifyPatternsInput,
) (*mcp.CallToolResult, IdentifyPatternsOutput, error) {
	return nil, IdentifyPatternsOutput{
		Patterns: s.graph.Intent().IdentifyPatterns(),
	}, nil
}

// GetContext flattens the graph plus all analysis output into one
// machine-readable document.
func (s *ArchService) GetContext(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetContextInput,
) (*mcp.CallToolResult, GetContextOutput, error) {
	doc, err := export.BuildContext(ctx, s.graph)
	if err != nil {
		return nil, GetContextOutput{}, fmt.Errorf("build context: %w", err)
	}
	return nil, GetContextOutput{Context: *doc}, nil
}

// nodeName resolves a node ID to its type name, falling back to the ID
// string for dangling references.
func (s *ArchService) nodeName(id graph.NodeID) string {
	if n, ok := s.graph.Node(id); ok {
		return n.TypeName
	}
	return id.String()
}
