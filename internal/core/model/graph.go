package model

import (
	"fmt"
)

// Node is a single discourse unit extracted from a transcript. Embedding,
// Position2D and CosSimToFirst are attached in place by the topic-analysis
// stage; they stay nil when that stage is skipped.
type Node struct {
	ID            string      `json:"id"`
	Type          string      `json:"type"`
	Content       string      `json:"content"`
	Speaker       string      `json:"speaker,omitempty"`
	Sequence      *int        `json:"sequence,omitempty"`
	Position2D    *[2]float64 `json:"position_2d,omitempty"`
	Embedding     []float32   `json:"embedding,omitempty"`
	CosSimToFirst *float64    `json:"cosine_sim_to_first,omitempty"`
}

// Edge is a typed relation between two nodes. The label is free text in
// the data model; each strategy's prompt constrains it to a small
// vocabulary but validation does not reject labels outside it.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// ArgumentGraph holds the nodes in extraction order plus the relations
// between them. A graph lives for one analysis request and is never
// persisted.
type ArgumentGraph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Validate checks the graph against a strategy schema: node IDs must be
// non-empty and unique, node types must belong to the schema, and every
// edge endpoint must reference an existing node.
func (g *ArgumentGraph) Validate(schema Schema) error {
	ids := make(map[string]bool, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node %d has an empty id", i)
		}
		if ids[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		ids[n.ID] = true
		if !schema.HasNodeType(n.Type) {
			return fmt.Errorf("node %q has unknown type %q (expected one of %v)", n.ID, n.Type, schema.NodeTypeNames())
		}
	}

	for i, e := range g.Edges {
		if !ids[e.Source] {
			return fmt.Errorf("edge %d references unknown source node %q", i, e.Source)
		}
		if !ids[e.Target] {
			return fmt.Errorf("edge %d references unknown target node %q", i, e.Target)
		}
	}

	return nil
}

// NodeByID returns the node with the given id, or nil.
func (g *ArgumentGraph) NodeByID(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}
