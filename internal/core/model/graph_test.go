package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSchema = Schema{
	NodeTypes: []NodeTypeSpec{
		{Name: "issue", Shape: "circle"},
		{Name: "position", Shape: "square"},
	},
	EdgeLabels: []string{"proposes"},
}

func TestValidateAcceptsConformingGraph(t *testing.T) {
	g := ArgumentGraph{
		Nodes: []Node{
			{ID: "n1", Type: "issue", Content: "Which DB?"},
			{ID: "n2", Type: "position", Content: "Use Postgres"},
		},
		Edges: []Edge{
			{Source: "n2", Target: "n1", Label: "proposes"},
		},
	}

	assert.NoError(t, g.Validate(testSchema))
}

func TestValidateRejectsUnknownNodeType(t *testing.T) {
	g := ArgumentGraph{
		Nodes: []Node{{ID: "n1", Type: "verdict", Content: "x"}},
	}

	err := g.Validate(testSchema)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestValidateRejectsDuplicateAndEmptyIDs(t *testing.T) {
	dup := ArgumentGraph{
		Nodes: []Node{
			{ID: "n1", Type: "issue"},
			{ID: "n1", Type: "position"},
		},
	}
	assert.ErrorContains(t, dup.Validate(testSchema), "duplicate node id")

	empty := ArgumentGraph{Nodes: []Node{{ID: "", Type: "issue"}}}
	assert.ErrorContains(t, empty.Validate(testSchema), "empty id")
}

func TestValidateRejectsDanglingEdgeEndpoints(t *testing.T) {
	g := ArgumentGraph{
		Nodes: []Node{{ID: "n1", Type: "issue"}},
		Edges: []Edge{{Source: "n1", Target: "ghost", Label: "proposes"}},
	}

	err := g.Validate(testSchema)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target")
}

func TestValidateAllowsArbitraryEdgeLabels(t *testing.T) {
	// Labels are free text in the data model; only node types are enforced.
	g := ArgumentGraph{
		Nodes: []Node{
			{ID: "n1", Type: "issue"},
			{ID: "n2", Type: "position"},
		},
		Edges: []Edge{{Source: "n2", Target: "n1", Label: "somehow_relates"}},
	}

	assert.NoError(t, g.Validate(testSchema))
}

func TestNodeByID(t *testing.T) {
	g := ArgumentGraph{
		Nodes: []Node{
			{ID: "n1", Type: "issue", Content: "a"},
			{ID: "n2", Type: "position", Content: "b"},
		},
	}

	n := g.NodeByID("n2")
	assert.NotNil(t, n)
	assert.Equal(t, "b", n.Content)
	assert.Nil(t, g.NodeByID("nope"))
}
