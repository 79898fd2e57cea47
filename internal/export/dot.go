package export

import (
	"fmt"
	"strings"

	"github.com/archetype-labs/archgraph/internal/graph"
)

// layerColors picks the fill color for each layer in DOT output.
var layerColors = map[graph.Layer]string{
	graph.LayerDomain:         "lightyellow",
	graph.LayerPort:           "lightblue",
	graph.LayerAdapter:        "lightgreen",
	graph.LayerApplication:    "lightpink",
	graph.LayerInfrastructure: "lightgray",
	graph.LayerUnknown:        "white",
}

// DOT produces a Graphviz digraph. Nodes are clustered by layer, colored
// per layer, and labeled with type name and role; edges are labeled with
// their relation kind.
func DOT(g *graph.Graph) string {
	var sb strings.Builder
	sb.WriteString("digraph architecture {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=box, style=filled];\n")

	cluster := 0
	for _, layer := range append(graph.Layers, graph.LayerUnknown) {
		nodes := g.NodesByLayer(layer)
		if len(nodes) == 0 {
			continue
		}
		sortNodes(nodes)

		fmt.Fprintf(&sb, "  subgraph cluster_%d {\n", cluster)
		fmt.Fprintf(&sb, "    label=\"%s\";\n", layer)
		for _, n := range nodes {
			fmt.Fprintf(&sb, "    \"%d\" [label=\"%s\\n(%s)\", fillcolor=%s];\n",
				n.ID.Value(), n.TypeName, n.Role, layerColors[layer])
		}
		sb.WriteString("  }\n")
		cluster++
	}

	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "  \"%d\" -> \"%d\" [label=\"%s\"];\n",
			e.Source.Value(), e.Target.Value(), e.Kind)
	}

	sb.WriteString("}\n")
	return sb.String()
}
