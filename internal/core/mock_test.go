package core

import (
	"context"
	"fmt"
)

// MockLLM replays queued responses in order.
type MockLLM struct {
	ResponseQueue []string
	Err           error
	next          int
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.next >= len(m.ResponseQueue) {
		return "", fmt.Errorf("mock queue exhausted after %d calls", m.next)
	}
	r := m.ResponseQueue[m.next]
	m.next++
	return r, nil
}

// MockEmbedder returns the configured vectors, one per input text.
type MockEmbedder struct {
	Vectors [][]float32
	Err     error
	Calls   int
}

func (m *MockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := m.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (m *MockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if len(texts) != len(m.Vectors) {
		return nil, fmt.Errorf("mock has %d vectors, got %d texts", len(m.Vectors), len(texts))
	}
	return m.Vectors, nil
}
