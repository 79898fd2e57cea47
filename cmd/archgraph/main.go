package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/archetype-labs/archgraph/internal/config"
	"github.com/archetype-labs/archgraph/internal/export"
	"github.com/archetype-labs/archgraph/internal/graph"
	"github.com/archetype-labs/archgraph/internal/mcptools"
	"github.com/archetype-labs/archgraph/internal/registry"
)

// CLI flags parsed from command line.
type cliFlags struct {
	Manifest string
	Format   string
	ServeMCP bool
	Addr     string
	Verbose  bool
	Version  bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("archgraph", flag.ContinueOnError)
	fs.StringVar(&flags.Manifest, "manifest", "", "path to the architecture manifest (default: from archgraph.yml)")
	fs.StringVar(&flags.Format, "format", "", "export format: mermaid, dot, or json (default: summary report)")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server exposing architecture tools")
	fs.StringVar(&flags.Addr, "addr", ":8137", "address for the MCP server")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyConfig(&flags, cfg)

	if flags.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if flags.Manifest == "" {
		return fmt.Errorf("no manifest given: pass -manifest or set it in archgraph.yml")
	}

	manifest, err := registry.Load(flags.Manifest)
	if err != nil {
		return err
	}
	log.Debug("manifest loaded", "path", flags.Manifest,
		"components", len(manifest.Components), "relationships", len(manifest.Relationships))

	g, err := registry.BuildGraph(manifest)
	if err != nil {
		return err
	}
	log.Debug("graph built", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	if flags.ServeMCP {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return mcptools.RunMCPServer(ctx, mcptools.NewArchService(g), flags.Addr)
	}

	switch flags.Format {
	case "mermaid":
		fmt.Print(export.Mermaid(g))
	case "dot":
		fmt.Print(export.DOT(g))
	case "json":
		data, err := export.ContextJSON(context.Background(), g)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "":
		printReport(g)
	default:
		return fmt.Errorf("unknown format: %s", flags.Format)
	}

	return nil
}

// applyConfig fills unset flag values from the project config.
func applyConfig(flags *cliFlags, cfg *config.ProjectConfig) {
	if flags.Manifest == "" {
		flags.Manifest = cfg.Manifest
	}
	if flags.Format == "" {
		flags.Format = cfg.Format
	}
	if cfg.MCPAddr != "" && flags.Addr == ":8137" {
		flags.Addr = cfg.MCPAddr
	}
	if cfg.Verbose {
		flags.Verbose = true
	}
}

// printReport writes the graph summary and every analysis finding to
// stdout.
func printReport(g *graph.Graph) {
	fmt.Print(g.Summary())

	v := g.Validation()

	if violations := v.ValidateLayerDependencies(); len(violations) > 0 {
		fmt.Printf("\nLayer violations (%d):\n", len(violations))
		for _, viol := range violations {
			fmt.Printf("  %s -> %s: %s\n", nodeName(g, viol.From), nodeName(g, viol.To), viol.Reason)
		}
	}

	if ports := v.ValidatePortImplementations(); len(ports) > 0 {
		fmt.Printf("\nUnimplemented ports (%d):\n", len(ports))
		for _, p := range ports {
			fmt.Printf("  %s\n", p.PortName)
		}
	}

	if smells := v.DetectSmells(); len(smells) > 0 {
		fmt.Printf("\nSmells (%d):\n", len(smells))
		for _, s := range smells {
			switch s.Kind {
			case graph.SmellGodComponent:
				fmt.Printf("  %s: %s (%d connections)\n", s.Kind, nodeName(g, s.NodeID), s.ConnectionCount)
			case graph.SmellCircularDependency:
				fmt.Printf("  %s:", s.Kind)
				for _, id := range s.Cycle {
					fmt.Printf(" %s", nodeName(g, id))
				}
				fmt.Println()
			case graph.SmellOrphanedComponent:
				fmt.Printf("  %s: %s\n", s.Kind, nodeName(g, s.NodeID))
			}
		}
	}

	if patterns := g.Intent().IdentifyPatterns(); len(patterns) > 0 {
		fmt.Printf("\nPatterns:\n")
		for _, p := range patterns {
			switch p.Kind {
			case graph.PatternRepository:
				fmt.Printf("  %s: %d repositories\n", p.Kind, p.Count)
			case graph.PatternCQRS:
				fmt.Printf("  %s: %d directives, %d queries\n", p.Kind, p.DirectiveCount, p.QueryCount)
			case graph.PatternEventSourcing:
				fmt.Printf("  %s: %d events, %d aggregates\n", p.Kind, p.EventCount, len(p.NodeIDs))
			}
		}
	}
}

func nodeName(g *graph.Graph, id graph.NodeID) string {
	if n, ok := g.Node(id); ok {
		return n.TypeName
	}
	return id.String()
}
