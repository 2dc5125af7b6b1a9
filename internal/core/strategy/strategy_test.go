package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validIBISResponse = "```json\n" + `{
	"nodes": [
		{"id": "n1", "type": "issue", "content": "Which language should we use?", "speaker": "Tanaka", "sequence": 1},
		{"id": "n2", "type": "position", "content": "Adopt Go", "speaker": "Sato", "sequence": 2},
		{"id": "n3", "type": "argument", "content": "The team already knows it", "speaker": "Suzuki", "sequence": 3}
	],
	"edges": [
		{"source": "n2", "target": "n1", "label": "proposes"},
		{"source": "n3", "target": "n2", "label": "supports"}
	]
}` + "\n```"

func TestIBISAnalyzeParsesAndValidates(t *testing.T) {
	mockLLM := &MockLLMClient{Response: validIBISResponse}
	s := NewIBIS(mockLLM, "analyze this conversation:\n%s")

	graph, err := s.Analyze(context.Background(), "Tanaka: which language?\nSato: Go.")
	require.NoError(t, err)

	require.Len(t, graph.Nodes, 3)
	assert.Equal(t, "issue", graph.Nodes[0].Type)
	assert.Equal(t, "Tanaka", graph.Nodes[0].Speaker)
	require.NotNil(t, graph.Nodes[0].Sequence)
	assert.Equal(t, 1, *graph.Nodes[0].Sequence)
	require.Len(t, graph.Edges, 2)
	assert.Equal(t, "proposes", graph.Edges[0].Label)

	// The transcript must land in the prompt's %s slot.
	require.Len(t, mockLLM.Prompts, 1)
	assert.Contains(t, mockLLM.Prompts[0], "Sato: Go.")
}

func TestAnalyzeRejectsMalformedResponse(t *testing.T) {
	mockLLM := &MockLLMClient{Response: "Sorry, I cannot produce JSON today."}
	s := NewIBIS(mockLLM, "%s")

	_, err := s.Analyze(context.Background(), "some text")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse graph")
}

func TestAnalyzeRejectsUnknownNodeType(t *testing.T) {
	mockLLM := &MockLLMClient{Response: `{"nodes": [{"id": "n1", "type": "verdict", "content": "x"}], "edges": []}`}
	s := NewIBIS(mockLLM, "%s")

	_, err := s.Analyze(context.Background(), "some text")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestAnalyzeRejectsDanglingEdge(t *testing.T) {
	mockLLM := &MockLLMClient{Response: `{
		"nodes": [{"id": "n1", "type": "issue", "content": "x"}],
		"edges": [{"source": "n1", "target": "n99", "label": "replies_to"}]
	}`}
	s := NewIBIS(mockLLM, "%s")

	_, err := s.Analyze(context.Background(), "some text")
	assert.Error(t, err)
}

func TestAnalyzePropagatesLLMError(t *testing.T) {
	mockLLM := &MockLLMClient{Err: errors.New("network down")}
	s := NewIBIS(mockLLM, "%s")

	_, err := s.Analyze(context.Background(), "some text")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate graph")
}

func TestToulminSchema(t *testing.T) {
	mockLLM := &MockLLMClient{Response: `{
		"nodes": [
			{"id": "n1", "type": "claim", "content": "Ship in March", "sequence": 1},
			{"id": "n2", "type": "rebuttal", "content": "Unless the audit slips", "sequence": 2}
		],
		"edges": [{"source": "n2", "target": "n1", "label": "rebuts"}]
	}`}
	s := NewToulmin(mockLLM, "%s")

	assert.Equal(t, "toulmin", s.Name())
	graph, err := s.Analyze(context.Background(), "some text")
	require.NoError(t, err)
	assert.Len(t, graph.Nodes, 2)

	// IBIS types are not valid under the Toulmin schema.
	assert.False(t, s.Schema().HasNodeType("issue"))
	assert.True(t, s.Schema().HasNodeType("warrant"))
}
