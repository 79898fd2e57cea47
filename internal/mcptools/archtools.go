package mcptools

import (
	"github.com/archetype-labs/archgraph/internal/export"
	"github.com/archetype-labs/archgraph/internal/graph"
)

// --- MCP Tool Input/Output Types ---
// These structs define the JSON schema for each MCP tool. The MCP Go SDK
// auto-generates JSON schemas from struct tags.

// QueryComponentsInput is the input for the query_components MCP tool.
type QueryComponentsInput struct {
	Layer              string `json:"layer,omitempty" jsonschema:"filter by layer: Domain, Port, Adapter, Application, Infrastructure, Unknown"`
	Role               string `json:"role,omitempty" jsonschema:"filter by role, e.g. Entity, Repository, UseCase, Directive, Query"`
	TypeNameContains   string `json:"typeNameContains,omitempty" jsonschema:"substring match on the component type name"`
	ModulePathContains string `json:"modulePathContains,omitempty" jsonschema:"substring match on the component module path"`
}

// QueryComponentsOutput is the result of the query_components MCP tool.
type QueryComponentsOutput struct {
	Components []graph.Node `json:"components"`
	Total      int          `json:"total"`
}

// DetectCyclesInput is the input for the detect_cycles MCP tool.
type DetectCyclesInput struct{}

// DetectCyclesOutput is the result of the detect_cycles MCP tool. Each
// cycle lists component type names in traversal order.
type DetectCyclesOutput struct {
	Cycles [][]string `json:"cycles"`
}

// CouplingMetricsInput is the input for the coupling_metrics MCP tool.
type CouplingMetricsInput struct {
	TypeName string `json:"typeName" jsonschema:"fully qualified component type name"`
}

// CouplingMetricsOutput is the result of the coupling_metrics MCP tool.
type CouplingMetricsOutput struct {
	TypeName string                `json:"typeName"`
	Metrics  graph.CouplingMetrics `json:"metrics"`
}

// ValidateArchitectureInput is the input for the validate_architecture MCP tool.
type ValidateArchitectureInput struct{}

// ValidateArchitectureOutput is the result of the validate_architecture
// MCP tool. All three checks are collect-all; an empty output means the
// architecture is clean.
type ValidateArchitectureOutput struct {
	LayerViolations    []graph.LayerViolation    `json:"layerViolations"`
	UnimplementedPorts []graph.UnimplementedPort `json:"unimplementedPorts"`
	Smells             []graph.Smell             `json:"smells"`
}

// IdentifyPatternsInput is the input for the identify_patterns MCP tool.
type IdentifyPatternsInput struct{}

// IdentifyPatternsOutput is the result of the identify_patterns MCP tool.
type IdentifyPatternsOutput struct {
	Patterns []graph.Pattern `json:"patterns"`
}

// GetContextInput is the input for the get_context MCP tool.
type GetContextInput struct{}

// GetContextOutput is the result of the get_context MCP tool.
type GetContextOutput struct {
	Context export.ArchContext `json:"context"`
}
