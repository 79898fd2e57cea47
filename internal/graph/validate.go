package graph

import "fmt"

// godComponentThreshold is the total degree (afferent + efferent) above
// which a node is flagged as a god component. A node with exactly this
// many connections is still acceptable.
const godComponentThreshold = 10

// Validator checks architectural rules over a read-only graph reference.
// Unlike Builder.Validate, every check here collects all findings in one
// pass instead of failing fast.
type Validator struct {
	graph *Graph
}

// Validation returns a validator bound to this graph.
func (g *Graph) Validation() *Validator {
	return &Validator{graph: g}
}

// LayerViolation records one edge that crosses layers in a forbidden
// direction.
type LayerViolation struct {
	From   NodeID `json:"from"`
	To     NodeID `json:"to"`
	Reason string `json:"reason"`
}

// UnimplementedPort records a Port-layer node with no incoming
// Implements edge.
type UnimplementedPort struct {
	PortID   NodeID `json:"portId"`
	PortName string `json:"portName"`
}

// SmellKind classifies an architectural smell.
type SmellKind string

const (
	SmellGodComponent       SmellKind = "GodComponent"
	SmellCircularDependency SmellKind = "CircularDependency"
	SmellOrphanedComponent  SmellKind = "OrphanedComponent"
)

// Smell is one detected structural problem. ConnectionCount is set for
// god components; Cycle is set for circular dependencies.
type Smell struct {
	Kind            SmellKind `json:"kind"`
	NodeID          NodeID    `json:"nodeId,omitempty"`
	ConnectionCount int       `json:"connectionCount,omitempty"`
	Cycle           []NodeID  `json:"cycle,omitempty"`
}

// allowedLayerDeps is the fixed table of permitted (from, to) layer
// pairs. Application and Infrastructure may depend on anything; every
// pair not listed here is a violation.
var allowedLayerDeps = map[Layer][]Layer{
	LayerDomain:  {LayerDomain},
	LayerPort:    {LayerDomain, LayerPort},
	LayerAdapter: {LayerPort, LayerDomain},
}

func layerDepAllowed(from, to Layer) bool {
	if from == LayerApplication || from == LayerInfrastructure {
		return true
	}
	for _, allowed := range allowedLayerDeps[from] {
		if to == allowed {
			return true
		}
	}
	return false
}

// ValidateLayerDependencies walks every edge and reports each one whose
// endpoint layers form a forbidden pair. Edges with an unresolvable
// endpoint are skipped; structural integrity is the Builder's concern.
func (v *Validator) ValidateLayerDependencies() []LayerViolation {
	var violations []LayerViolation
	for _, e := range v.graph.edges {
		src, ok := v.graph.Node(e.Source)
		if !ok {
			continue
		}
		tgt, ok := v.graph.Node(e.Target)
		if !ok {
			continue
		}
		if !layerDepAllowed(src.Layer, tgt.Layer) {
			violations = append(violations, LayerViolation{
				From:   src.ID,
				To:     tgt.ID,
				Reason: fmt.Sprintf("%s layer cannot depend on %s layer", src.Layer, tgt.Layer),
			})
		}
	}
	return violations
}

// ValidatePortImplementations reports every Port-layer node that has no
// incoming Implements edge.
func (v *Validator) ValidatePortImplementations() []UnimplementedPort {
	var unimplemented []UnimplementedPort
	for _, port := range v.graph.NodesByLayer(LayerPort) {
		implemented := false
		for _, e := range v.graph.EdgesTo(port.ID) {
			if e.Kind == RelationImplements {
				implemented = true
				break
			}
		}
		if !implemented {
			unimplemented = append(unimplemented, UnimplementedPort{
				PortID:   port.ID,
				PortName: port.TypeName,
			})
		}
	}
	return unimplemented
}

// DetectSmells runs the three smell passes and concatenates their
// results: god components, circular dependencies, orphaned components.
func (v *Validator) DetectSmells() []Smell {
	var smells []Smell
	smells = append(smells, v.detectGodComponents()...)
	smells = append(smells, v.detectCircularDependencies()...)
	smells = append(smells, v.detectOrphanedComponents()...)
	return smells
}

func (v *Validator) detectGodComponents() []Smell {
	var smells []Smell
	for id := range v.graph.nodes {
		total := len(v.graph.EdgesTo(id)) + len(v.graph.EdgesFrom(id))
		if total > godComponentThreshold {
			smells = append(smells, Smell{
				Kind:            SmellGodComponent,
				NodeID:          id,
				ConnectionCount: total,
			})
		}
	}
	return smells
}

func (v *Validator) detectCircularDependencies() []Smell {
	var smells []Smell
	for _, cycle := range v.graph.Analysis().DetectCycles() {
		smells = append(smells, Smell{
			Kind:  SmellCircularDependency,
			Cycle: cycle,
		})
	}
	return smells
}

func (v *Validator) detectOrphanedComponents() []Smell {
	var smells []Smell
	for id := range v.graph.nodes {
		if len(v.graph.EdgesTo(id)) == 0 && len(v.graph.EdgesFrom(id)) == 0 {
			smells = append(smells, Smell{
				Kind:   SmellOrphanedComponent,
				NodeID: id,
			})
		}
	}
	return smells
}
