package export

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/archetype-labs/archgraph/internal/graph"
)

// ArchContext flattens a graph plus its analysis, validation, and intent
// results into one machine-readable document for external tooling.
type ArchContext struct {
	Description   string             `json:"description"`
	GeneratedAt   string             `json:"generatedAt"`
	Components    []ComponentInfo    `json:"components"`
	Relationships []RelationshipInfo `json:"relationships"`
	Analysis      AnalysisReport     `json:"analysis"`
	Validation    ValidationReport   `json:"validation"`
	Patterns      []graph.Pattern    `json:"patterns"`
	Attributes    map[string]string  `json:"attributes,omitempty"`
}

// ComponentInfo is one node with its coupling metrics attached.
type ComponentInfo struct {
	TypeName   string                `json:"typeName"`
	Layer      graph.Layer           `json:"layer"`
	Role       graph.Role            `json:"role"`
	ModulePath string                `json:"modulePath,omitempty"`
	Coupling   graph.CouplingMetrics `json:"coupling"`
}

// RelationshipInfo is one edge with endpoint names resolved.
type RelationshipInfo struct {
	From string         `json:"from"`
	To   string         `json:"to"`
	Kind graph.Relation `json:"kind"`
}

// AnalysisReport carries the structural-analysis pass results.
type AnalysisReport struct {
	Cycles    [][]graph.NodeID `json:"cycles,omitempty"`
	LeafCount int              `json:"leafCount"`
	RootCount int              `json:"rootCount"`
}

// ValidationReport carries the architectural-validation pass results.
type ValidationReport struct {
	LayerViolations    []graph.LayerViolation    `json:"layerViolations,omitempty"`
	UnimplementedPorts []graph.UnimplementedPort `json:"unimplementedPorts,omitempty"`
	Smells             []graph.Smell             `json:"smells,omitempty"`
}

// BuildContext assembles the full context document. The analysis,
// validation, and intent passes run concurrently: the graph is immutable,
// so they can share it without coordination.
func BuildContext(ctx context.Context, g *graph.Graph) (*ArchContext, error) {
	doc := &ArchContext{
		Description: g.Metadata().Description,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Attributes:  g.Metadata().Attributes,
	}

	eg, _ := errgroup.WithContext(ctx)

	eg.Go(func() error {
		a := g.Analysis()
		doc.Analysis = AnalysisReport{
			Cycles:    a.DetectCycles(),
			LeafCount: len(a.LeafNodes()),
			RootCount: len(a.RootNodes()),
		}
		return nil
	})

	eg.Go(func() error {
		v := g.Validation()
		doc.Validation = ValidationReport{
			LayerViolations:    v.ValidateLayerDependencies(),
			UnimplementedPorts: v.ValidatePortImplementations(),
			Smells:             v.DetectSmells(),
		}
		return nil
	})

	eg.Go(func() error {
		doc.Patterns = g.Intent().IdentifyPatterns()
		return nil
	})

	// Components and relationships are cheap flat scans; no goroutine.
	a := g.Analysis()
	for _, n := range g.Nodes() {
		coupling, _ := a.Coupling(n.ID)
		doc.Components = append(doc.Components, ComponentInfo{
			TypeName:   n.TypeName,
			Layer:      n.Layer,
			Role:       n.Role,
			ModulePath: n.ModulePath,
			Coupling:   coupling,
		})
	}
	for _, e := range g.Edges() {
		info := RelationshipInfo{Kind: e.Kind}
		if src, ok := g.Node(e.Source); ok {
			info.From = src.TypeName
		}
		if tgt, ok := g.Node(e.Target); ok {
			info.To = tgt.TypeName
		}
		doc.Relationships = append(doc.Relationships, info)
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return doc, nil
}

// ContextJSON renders the context document as indented JSON.
func ContextJSON(ctx context.Context, g *graph.Graph) ([]byte, error) {
	doc, err := BuildContext(ctx, g)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}
