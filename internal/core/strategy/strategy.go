package strategy

import (
	"context"
	"fmt"

	"github.com/argumentlab/miner/internal/core/common"
	"github.com/argumentlab/miner/internal/core/model"
	"github.com/argumentlab/miner/internal/llm"
)

// MiningStrategy turns raw transcript text into a validated ArgumentGraph
// for one argumentation model (IBIS, Toulmin, ...).
type MiningStrategy interface {
	Name() string
	Schema() model.Schema
	Analyze(ctx context.Context, text string) (*model.ArgumentGraph, error)
}

// promptStrategy is the shared implementation: one schema-constrained LLM
// call, lenient JSON extraction, then validation against the strategy
// schema. There is no retry or repair; a malformed response is an error.
type promptStrategy struct {
	name     string
	schema   model.Schema
	llm      llm.LLMClient
	template string // one %s slot for the transcript
}

func (s *promptStrategy) Name() string { return s.name }

func (s *promptStrategy) Schema() model.Schema { return s.schema }

func (s *promptStrategy) Analyze(ctx context.Context, text string) (*model.ArgumentGraph, error) {
	prompt := fmt.Sprintf(s.template, text)

	response, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate graph: %w", err)
	}

	graph, err := common.ParseJSON[model.ArgumentGraph](response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graph: %w", err)
	}

	if err := graph.Validate(s.schema); err != nil {
		return nil, fmt.Errorf("extracted graph is invalid: %w", err)
	}

	return &graph, nil
}
