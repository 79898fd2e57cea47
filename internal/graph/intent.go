package graph

// PatternKind names an inferred architectural pattern.
type PatternKind string

const (
	PatternRepository    PatternKind = "Repository"
	PatternCQRS          PatternKind = "CQRS"
	PatternEventSourcing PatternKind = "EventSourcing"
)

// Pattern is one detected architectural pattern. Which fields are set
// depends on the kind: Repository carries Count and NodeIDs, CQRS carries
// DirectiveCount and QueryCount, EventSourcing carries EventCount and the
// aggregate NodeIDs.
type Pattern struct {
	Kind           PatternKind `json:"kind"`
	Count          int         `json:"count,omitempty"`
	NodeIDs        []NodeID    `json:"nodeIds,omitempty"`
	DirectiveCount int         `json:"directiveCount,omitempty"`
	QueryCount     int         `json:"queryCount,omitempty"`
	EventCount     int         `json:"eventCount,omitempty"`
}

// Inference detects higher-level architectural patterns from graph shape.
// All detectors run over Query results and are pure reads.
type Inference struct {
	graph *Graph
}

// Intent returns a pattern inference engine bound to this graph.
func (g *Graph) Intent() *Inference {
	return &Inference{graph: g}
}

// IdentifyPatterns runs every pattern detector and returns the findings
// that matched, in a fixed order: Repository, CQRS, EventSourcing.
func (i *Inference) IdentifyPatterns() []Pattern {
	var patterns []Pattern
	if p, ok := i.detectRepository(); ok {
		patterns = append(patterns, p)
	}
	if p, ok := i.detectCQRS(); ok {
		patterns = append(patterns, p)
	}
	if p, ok := i.detectEventSourcing(); ok {
		patterns = append(patterns, p)
	}
	return patterns
}

// detectRepository matches when at least one node has the Repository role.
func (i *Inference) detectRepository() (Pattern, bool) {
	repos := i.graph.Query().Role(RoleRepository).Execute()
	if len(repos) == 0 {
		return Pattern{}, false
	}
	ids := make([]NodeID, len(repos))
	for idx, n := range repos {
		ids[idx] = n.ID
	}
	return Pattern{
		Kind:    PatternRepository,
		Count:   len(repos),
		NodeIDs: ids,
	}, true
}

// detectCQRS matches when any Directive-role or Query-role nodes exist.
func (i *Inference) detectCQRS() (Pattern, bool) {
	directives := i.graph.Query().Role(RoleDirective).Count()
	queries := i.graph.Query().Role(RoleQuery).Count()
	if directives+queries == 0 {
		return Pattern{}, false
	}
	return Pattern{
		Kind:           PatternCQRS,
		DirectiveCount: directives,
		QueryCount:     queries,
	}, true
}

// detectEventSourcing matches only when both domain events and aggregates
// are present. An event-only or aggregate-only graph does not qualify.
func (i *Inference) detectEventSourcing() (Pattern, bool) {
	events := i.graph.Query().Role(RoleDomainEvent).Count()
	aggregates := i.graph.Query().Role(RoleAggregate).Execute()
	if events == 0 || len(aggregates) == 0 {
		return Pattern{}, false
	}
	ids := make([]NodeID, len(aggregates))
	for idx, n := range aggregates {
		ids[idx] = n.ID
	}
	return Pattern{
		Kind:       PatternEventSourcing,
		EventCount: events,
		NodeIDs:    ids,
	}, true
}
