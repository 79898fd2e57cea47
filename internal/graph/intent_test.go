package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findPattern(patterns []Pattern, kind PatternKind) (Pattern, bool) {
	for _, p := range patterns {
		if p.Kind == kind {
			return p, true
		}
	}
	return Pattern{}, false
}

func TestIdentifyPatterns_Repository(t *testing.T) {
	repo := NewNode(LayerPort, RoleRepository, "UserRepository", "ports")
	g := buildGraph(t, []Node{repo}, nil)

	patterns := g.Intent().IdentifyPatterns()
	p, ok := findPattern(patterns, PatternRepository)
	require.True(t, ok)
	assert.Equal(t, 1, p.Count)
	assert.Equal(t, []NodeID{repo.ID}, p.NodeIDs)
}

func TestIdentifyPatterns_NoRepository(t *testing.T) {
	entity := NewNode(LayerDomain, RoleEntity, "User", "domain")
	g := buildGraph(t, []Node{entity}, nil)

	_, ok := findPattern(g.Intent().IdentifyPatterns(), PatternRepository)
	assert.False(t, ok)
}

func TestIdentifyPatterns_CQRS(t *testing.T) {
	g := buildGraph(t, []Node{
		NewNode(LayerApplication, RoleDirective, "CreateUser", "app"),
		NewNode(LayerApplication, RoleDirective, "DeleteUser", "app"),
		NewNode(LayerApplication, RoleQuery, "GetUser", "app"),
	}, nil)

	p, ok := findPattern(g.Intent().IdentifyPatterns(), PatternCQRS)
	require.True(t, ok)
	assert.Equal(t, 2, p.DirectiveCount)
	assert.Equal(t, 1, p.QueryCount)
}

func TestIdentifyPatterns_CQRSQueryOnly(t *testing.T) {
	// Either side alone is enough to flag CQRS.
	g := buildGraph(t, []Node{
		NewNode(LayerApplication, RoleQuery, "GetUser", "app"),
	}, nil)

	p, ok := findPattern(g.Intent().IdentifyPatterns(), PatternCQRS)
	require.True(t, ok)
	assert.Equal(t, 0, p.DirectiveCount)
	assert.Equal(t, 1, p.QueryCount)
}

func TestIdentifyPatterns_EventSourcing(t *testing.T) {
	agg := NewNode(LayerDomain, RoleAggregate, "Order", "domain")
	g := buildGraph(t, []Node{
		agg,
		NewNode(LayerDomain, RoleDomainEvent, "OrderPlaced", "domain"),
		NewNode(LayerDomain, RoleDomainEvent, "OrderShipped", "domain"),
	}, nil)

	p, ok := findPattern(g.Intent().IdentifyPatterns(), PatternEventSourcing)
	require.True(t, ok)
	assert.Equal(t, 2, p.EventCount)
	assert.Equal(t, []NodeID{agg.ID}, p.NodeIDs)
}

func TestIdentifyPatterns_EventsWithoutAggregates(t *testing.T) {
	g := buildGraph(t, []Node{
		NewNode(LayerDomain, RoleDomainEvent, "OrderPlaced", "domain"),
	}, nil)

	_, ok := findPattern(g.Intent().IdentifyPatterns(), PatternEventSourcing)
	assert.False(t, ok, "events without aggregates do not qualify")
}

func TestIdentifyPatterns_AggregatesWithoutEvents(t *testing.T) {
	g := buildGraph(t, []Node{
		NewNode(LayerDomain, RoleAggregate, "Order", "domain"),
	}, nil)

	_, ok := findPattern(g.Intent().IdentifyPatterns(), PatternEventSourcing)
	assert.False(t, ok)
}

func TestIdentifyPatterns_EmptyGraph(t *testing.T) {
	g := NewBuilder().Build()
	assert.Empty(t, g.Intent().IdentifyPatterns())
}
