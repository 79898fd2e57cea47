// Package registry loads architecture manifests and feeds them to the
// graph builder. A manifest is the explicit-wiring replacement for
// compile-time component registration: a YAML document listing component
// descriptors (type name, module path, layer, role) and relationship
// descriptors (source, target, kind).
package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/archetype-labs/archgraph/internal/graph"
)

// Component describes one architectural unit to register.
type Component struct {
	TypeName   string            `yaml:"typeName"`
	ModulePath string            `yaml:"modulePath,omitempty"`
	Layer      string            `yaml:"layer"`
	Role       string            `yaml:"role"`
	Metadata   map[string]string `yaml:"metadata,omitempty"`
}

// Relationship describes one directed edge between registered components,
// referenced by type name.
type Relationship struct {
	Source   string            `yaml:"source"`
	Target   string            `yaml:"target"`
	Kind     string            `yaml:"kind"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Manifest is the full architecture description handed to the builder.
type Manifest struct {
	Description   string            `yaml:"description,omitempty"`
	Attributes    map[string]string `yaml:"attributes,omitempty"`
	Components    []Component       `yaml:"components"`
	Relationships []Relationship    `yaml:"relationships,omitempty"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes a manifest from YAML bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// BuildGraph feeds the manifest through a graph builder and returns the
// validated immutable graph. Layer, role, and relation strings outside
// the closed sets map to the Unknown members rather than failing; a
// relationship naming an unregistered component surfaces as a builder
// validation error.
func BuildGraph(m *Manifest) (*graph.Graph, error) {
	b := graph.NewBuilder()
	if m.Description != "" {
		b.Description(m.Description)
	}
	for k, v := range m.Attributes {
		b.Attribute(k, v)
	}

	for _, c := range m.Components {
		node := graph.NewNode(parseLayer(c.Layer), parseRole(c.Role), c.TypeName, c.ModulePath)
		node.Metadata = c.Metadata
		b.AddNode(node)
	}

	for _, r := range m.Relationships {
		edge := graph.NewEdge(
			graph.NodeIDFromName(r.Source),
			graph.NodeIDFromName(r.Target),
			parseRelation(r.Kind),
		)
		edge.Metadata = r.Metadata
		b.AddEdge(edge)
	}

	g, err := b.BuildValidated()
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	return g, nil
}

func parseLayer(s string) graph.Layer {
	if l := graph.Layer(s); l.Known() {
		return l
	}
	return graph.LayerUnknown
}

func parseRole(s string) graph.Role {
	if r := graph.Role(s); r.Known() {
		return r
	}
	return graph.RoleUnknown
}

func parseRelation(s string) graph.Relation {
	if r := graph.Relation(s); r.Known() {
		return r
	}
	return graph.RelationUnknown
}
