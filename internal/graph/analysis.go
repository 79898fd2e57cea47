package graph

// Analysis runs structural algorithms over a read-only graph reference.
// It holds no state of its own beyond the graph pointer and never
// mutates anything, so concurrent use is safe.
type Analysis struct {
	graph *Graph
}

// Analysis returns an analyzer bound to this graph.
func (g *Graph) Analysis() *Analysis {
	return &Analysis{graph: g}
}

// CouplingMetrics holds afferent/efferent coupling counts for one node.
// Instability is efferent / (afferent + efferent): 0 means fully
// depended-upon, 1 means fully dependent.
type CouplingMetrics struct {
	Afferent    int     `json:"afferent"`
	Efferent    int     `json:"efferent"`
	Instability float64 `json:"instability"`
}

// DetectCycles finds circular dependencies via depth-first search from
// each unvisited node, tracking a recursion stack and the current path.
// When an outgoing edge reaches a node already on the recursion stack,
// the path suffix starting at that node's first occurrence is recorded
// as a cycle.
//
// Cycles are not deduplicated. Because a node visited in one traversal
// is never restarted as a fresh root, cycles reachable only through a
// previously visited, non-stack node can be missed. That is acceptable
// for architecture-scale graphs and callers must not assume full cycle
// enumeration.
func (a *Analysis) DetectCycles() [][]NodeID {
	var cycles [][]NodeID
	visited := make(map[NodeID]bool)
	onStack := make(map[NodeID]bool)
	var path []NodeID

	var dfs func(id NodeID)
	dfs = func(id NodeID) {
		visited[id] = true
		onStack[id] = true
		path = append(path, id)

		for _, e := range a.graph.EdgesFrom(id) {
			if !visited[e.Target] {
				dfs(e.Target)
			} else if onStack[e.Target] {
				for i, p := range path {
					if p == e.Target {
						cycle := make([]NodeID, len(path)-i)
						copy(cycle, path[i:])
						cycles = append(cycles, cycle)
						break
					}
				}
			}
		}

		path = path[:len(path)-1]
		onStack[id] = false
	}

	for id := range a.graph.nodes {
		if !visited[id] {
			dfs(id)
		}
	}

	return cycles
}

// Coupling computes coupling metrics for the node with the given ID.
// Returns false if the node is not in the graph. An isolated node has
// instability exactly 0.0 rather than NaN.
func (a *Analysis) Coupling(id NodeID) (CouplingMetrics, bool) {
	if _, ok := a.graph.Node(id); !ok {
		return CouplingMetrics{}, false
	}

	afferent := len(a.graph.EdgesTo(id))
	efferent := len(a.graph.EdgesFrom(id))
	total := afferent + efferent

	instability := 0.0
	if total > 0 {
		instability = float64(efferent) / float64(total)
	}

	return CouplingMetrics{
		Afferent:    afferent,
		Efferent:    efferent,
		Instability: instability,
	}, true
}

// LeafNodes returns all nodes with no outgoing edges.
func (a *Analysis) LeafNodes() []Node {
	var out []Node
	for id, n := range a.graph.nodes {
		if len(a.graph.EdgesFrom(id)) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// RootNodes returns all nodes with no incoming edges.
func (a *Analysis) RootNodes() []Node {
	var out []Node
	for id, n := range a.graph.nodes {
		if len(a.graph.EdgesTo(id)) == 0 {
			out = append(out, n)
		}
	}
	return out
}
