package mcptools

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/archetype-labs/archgraph/internal/export"
)

// version is set by the linker at build time.
var version = "dev"

// contextResourceURI addresses the flattened architecture context
// document served as an MCP resource.
const contextResourceURI = "arch://context"

// NewArchMCPServer creates an MCP server with all architecture tools and
// the context resource registered.
func NewArchMCPServer(svc *ArchService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "archgraph",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_components",
		Description: "Search architecture components by layer, role, type-name substring, or module-path substring. All filters are ANDed; empty filters match everything.",
	}, svc.QueryComponents)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect_cycles",
		Description: "Find circular dependencies between components. Each cycle lists component names in traversal order.",
	}, svc.DetectCycles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "coupling_metrics",
		Description: "Compute afferent coupling, efferent coupling, and instability (efferent / total) for one component.",
	}, svc.CouplingMetrics)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_architecture",
		Description: "Check layer-dependency rules, unimplemented ports, and architectural smells (god components, cycles, orphans). Collects every finding rather than stopping at the first.",
	}, svc.ValidateArchitecture)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "identify_patterns",
		Description: "Infer architectural patterns (Repository, CQRS, Event Sourcing) from the graph shape.",
	}, svc.IdentifyPatterns)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_context",
		Description: "Flatten the architecture graph plus analysis, validation, and pattern results into one machine-readable document.",
	}, svc.GetContext)

	server.AddResource(&mcp.Resource{
		URI:         contextResourceURI,
		Name:        "architecture-context",
		Description: "Machine-readable architecture context: components, relationships, analysis, validation, and patterns.",
		MIMEType:    "application/json",
	}, svc.readContextResource)

	return server
}

// readContextResource serves the context document for resource reads.
func (s *ArchService) readContextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := export.ContextJSON(ctx, s.graph)
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      contextResourceURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// RunMCPServer starts an HTTP server exposing the architecture MCP tools.
func RunMCPServer(ctx context.Context, svc *ArchService, addr string) error {
	server := NewArchMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	log.Info("mcp server listening", "addr", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
