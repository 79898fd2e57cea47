package graph

import "time"

// --- Enums ---

// Layer identifies the architectural tier a component belongs to.
type Layer string

const (
	LayerDomain         Layer = "Domain"
	LayerPort           Layer = "Port"
	LayerAdapter        Layer = "Adapter"
	LayerApplication    Layer = "Application"
	LayerInfrastructure Layer = "Infrastructure"
	LayerUnknown        Layer = "Unknown"
)

// Layers lists every known layer, excluding Unknown. Summary and
// visualization code iterate this in a stable order.
var Layers = []Layer{
	LayerDomain,
	LayerPort,
	LayerAdapter,
	LayerApplication,
	LayerInfrastructure,
}

// Known reports whether l is one of the closed layer set (Unknown included).
func (l Layer) Known() bool {
	switch l {
	case LayerDomain, LayerPort, LayerAdapter, LayerApplication, LayerInfrastructure, LayerUnknown:
		return true
	}
	return false
}

// Role classifies a component's responsibility within its layer.
type Role string

const (
	RoleEntity           Role = "Entity"
	RoleValueObject      Role = "ValueObject"
	RoleAggregate        Role = "Aggregate"
	RoleDomainEvent      Role = "DomainEvent"
	RoleDomainService    Role = "DomainService"
	RoleInputPort        Role = "InputPort"
	RoleOutputPort       Role = "OutputPort"
	RoleRepository       Role = "Repository"
	RoleUseCase          Role = "UseCase"
	RoleQuery            Role = "Query"
	RoleAdapter          Role = "Adapter"
	RoleMapper           Role = "Mapper"
	RoleDirective        Role = "Directive"
	RoleDirectiveHandler Role = "DirectiveHandler"
	RoleQueryHandler     Role = "QueryHandler"
	RoleConfig           Role = "Config"
	RoleUnknown          Role = "Unknown"
)

// Known reports whether r is one of the closed role set.
func (r Role) Known() bool {
	switch r {
	case RoleEntity, RoleValueObject, RoleAggregate, RoleDomainEvent,
		RoleDomainService, RoleInputPort, RoleOutputPort, RoleRepository,
		RoleUseCase, RoleQuery, RoleAdapter, RoleMapper, RoleDirective,
		RoleDirectiveHandler, RoleQueryHandler, RoleConfig, RoleUnknown:
		return true
	}
	return false
}

// Relation classifies a directed relationship between two components.
type Relation string

const (
	RelationImplements Relation = "Implements"
	RelationDepends    Relation = "Depends"
	RelationTransforms Relation = "Transforms"
	RelationAggregates Relation = "Aggregates"
	RelationInvokes    Relation = "Invokes"
	RelationProduces   Relation = "Produces"
	RelationConsumes   Relation = "Consumes"
	RelationValidates  Relation = "Validates"
	RelationConfigures Relation = "Configures"
	RelationUnknown    Relation = "Unknown"
)

// Known reports whether r is one of the closed relation set.
func (r Relation) Known() bool {
	switch r {
	case RelationImplements, RelationDepends, RelationTransforms,
		RelationAggregates, RelationInvokes, RelationProduces,
		RelationConsumes, RelationValidates, RelationConfigures,
		RelationUnknown:
		return true
	}
	return false
}

// --- Models ---

// Node represents one architectural component. Nodes are value types and
// are never mutated after construction; the graph hands out copies only.
type Node struct {
	ID         NodeID            `json:"id"`
	Layer      Layer             `json:"layer"`
	Role       Role              `json:"role"`
	TypeName   string            `json:"typeName"`
	ModulePath string            `json:"modulePath"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// NewNode constructs a Node with its ID derived from typeName.
func NewNode(layer Layer, role Role, typeName, modulePath string) Node {
	return Node{
		ID:         NodeIDFromName(typeName),
		Layer:      layer,
		Role:       role,
		TypeName:   typeName,
		ModulePath: modulePath,
	}
}

// Edge is a directed relationship between two nodes, referenced by ID.
// Edges do not own nodes: an edge whose endpoint is absent from the graph
// is structurally dangling, which Builder.Validate detects. Multiple edges
// between the same ordered pair with different kinds are permitted.
type Edge struct {
	Source   NodeID            `json:"source"`
	Target   NodeID            `json:"target"`
	Kind     Relation          `json:"kind"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewEdge constructs an Edge between two node IDs.
func NewEdge(source, target NodeID, kind Relation) Edge {
	return Edge{Source: source, Target: target, Kind: kind}
}

// Metadata describes the graph as a whole. Attached once at build time.
type Metadata struct {
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"createdAt"`
	Version     int               `json:"version"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}
