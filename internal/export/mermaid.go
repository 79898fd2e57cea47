// Package export renders read-only views of an architecture graph:
// diagram text formats (Mermaid, DOT) and a machine-readable context
// document for external tooling. Nothing here mutates the graph.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/archetype-labs/archgraph/internal/graph"
)

// Mermaid produces a Mermaid "graph TD" diagram. Nodes are grouped into
// one subgraph per populated layer; every edge becomes an arrow labeled
// with its relation kind.
func Mermaid(g *graph.Graph) string {
	// Stable node → ID mapping (alphanumeric only, sorted by type name).
	ids := mermaidIDs(g)

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, layer := range graph.Layers {
		nodes := g.NodesByLayer(layer)
		if len(nodes) == 0 {
			continue
		}
		sortNodes(nodes)

		fmt.Fprintf(&sb, "  subgraph %s\n", layer)
		for _, n := range nodes {
			fmt.Fprintf(&sb, "    %s[\"%s\"]\n", ids[n.ID], n.TypeName)
		}
		sb.WriteString("  end\n")
	}

	// Unknown-layer nodes sit outside any subgraph.
	unknown := g.NodesByLayer(graph.LayerUnknown)
	sortNodes(unknown)
	for _, n := range unknown {
		fmt.Fprintf(&sb, "  %s[\"%s\"]\n", ids[n.ID], n.TypeName)
	}

	for _, e := range g.Edges() {
		src, ok := ids[e.Source]
		if !ok {
			continue
		}
		tgt, ok := ids[e.Target]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "  %s -->|%s| %s\n", src, e.Kind, tgt)
	}

	return sb.String()
}

// mermaidIDs assigns each node a short stable diagram ID (N0, N1, ...)
// ordered by type name so output is deterministic.
func mermaidIDs(g *graph.Graph) map[graph.NodeID]string {
	nodes := g.Nodes()
	sortNodes(nodes)

	ids := make(map[graph.NodeID]string, len(nodes))
	for i, n := range nodes {
		ids[n.ID] = fmt.Sprintf("N%d", i)
	}
	return ids
}

func sortNodes(nodes []graph.Node) {
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].TypeName < nodes[j].TypeName
	})
}
