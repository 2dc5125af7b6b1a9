package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/argumentlab/miner/internal/config"
	"github.com/argumentlab/miner/internal/core/model"
	"github.com/argumentlab/miner/internal/core/plot"
	"github.com/argumentlab/miner/internal/core/projection"
	"github.com/argumentlab/miner/internal/core/strategy"
	"github.com/argumentlab/miner/internal/llm"
	"github.com/argumentlab/miner/internal/logx"
)

var (
	ErrEmptyTranscript = errors.New("transcript text is empty")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

type AnalyzeRequest struct {
	Text     string
	Strategy string
	// TopicAnalysis overrides the configured default when set.
	TopicAnalysis *bool
	// ColorMode selects the node colour encoding; empty uses the default.
	ColorMode string
}

// AnalysisResult is everything one pipeline run produces. TopicMap and
// Timeline are nil when the corresponding plot guard fires or topic
// analysis is skipped.
type AnalysisResult struct {
	ID       string               `json:"analysis_id"`
	Strategy string               `json:"strategy"`
	Graph    *model.ArgumentGraph `json:"graph"`
	TopicMap *plot.Spec           `json:"topic_map,omitempty"`
	Timeline *plot.Spec           `json:"timeline,omitempty"`
}

// Miner runs the full analysis chain: strategy extraction, validation,
// batch embedding, 2-D projection, colour encoding, chart construction.
// One linear sequence per request; nothing is cached between runs.
type Miner struct {
	strategies map[string]strategy.MiningStrategy
	order      []string
	embedder   llm.EmbedderClient
	defaults   config.AnalysisConfig
}

func NewMiner(llmClient llm.LLMClient, embedder llm.EmbedderClient, cfg *config.Config) *Miner {
	m := &Miner{
		strategies: make(map[string]strategy.MiningStrategy),
		embedder:   embedder,
		defaults:   cfg.Analysis,
	}
	m.register(strategy.NewIBIS(llmClient, cfg.Prompts.IBIS))
	m.register(strategy.NewToulmin(llmClient, cfg.Prompts.Toulmin))
	return m
}

func (m *Miner) register(s strategy.MiningStrategy) {
	m.strategies[s.Name()] = s
	m.order = append(m.order, s.Name())
}

// Strategies lists the registered strategy names in registration order.
func (m *Miner) Strategies() []string {
	return append([]string(nil), m.order...)
}

// HasEmbedder reports whether the topic-analysis stage can run.
func (m *Miner) HasEmbedder() bool {
	return m.embedder != nil
}

func (m *Miner) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalysisResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyTranscript
	}

	name := req.Strategy
	if name == "" {
		name = "ibis"
	}
	strat, ok := m.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
	}

	encoder, err := plot.EncoderFor(firstNonEmpty(req.ColorMode, m.defaults.ColorMode))
	if err != nil {
		return nil, err
	}

	graph, err := strat.Analyze(ctx, req.Text)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	logx.Debug().Str("strategy", strat.Name()).Int("nodes", len(graph.Nodes)).Int("edges", len(graph.Edges)).Msg("graph extracted")

	result := &AnalysisResult{
		ID:       uuid.New().String(),
		Strategy: strat.Name(),
		Graph:    graph,
	}

	topic := m.defaults.TopicAnalysis
	if req.TopicAnalysis != nil {
		topic = *req.TopicAnalysis
	}
	if !topic || len(graph.Nodes) == 0 {
		return result, nil
	}
	if m.embedder == nil {
		logx.Warn().Str("strategy", strat.Name()).Msg("no embedder configured, skipping topic analysis")
		return result, nil
	}

	if err := m.attachTopicAnalysis(ctx, graph); err != nil {
		return nil, err
	}

	result.TopicMap = plot.TopicMap(graph, strat.Schema(), encoder)
	result.Timeline = plot.Timeline(graph, strat.Schema(), encoder)
	return result, nil
}

// attachTopicAnalysis embeds every node content in one batch call, then
// mutates the graph in place with embeddings, similarity to the first
// node, and PCA coordinates. With a single node the projection is skipped
// and the plot guards take over.
func (m *Miner) attachTopicAnalysis(ctx context.Context, graph *model.ArgumentGraph) error {
	contents := make([]string, len(graph.Nodes))
	for i, n := range graph.Nodes {
		contents[i] = n.Content
	}

	vectors, err := m.embedder.EmbedBatch(ctx, contents)
	if err != nil {
		return fmt.Errorf("failed to embed node contents: %w", err)
	}
	if len(vectors) != len(graph.Nodes) {
		return fmt.Errorf("embedding count mismatch: got %d, want %d", len(vectors), len(graph.Nodes))
	}

	first := vectors[0]
	for i := range graph.Nodes {
		graph.Nodes[i].Embedding = vectors[i]
		sim := projection.CosineSim(vectors[i], first)
		graph.Nodes[i].CosSimToFirst = &sim
	}

	if len(vectors) < 2 {
		return nil
	}

	coords, err := projection.PCA2D(vectors)
	if err != nil {
		return fmt.Errorf("failed to project embeddings: %w", err)
	}
	for i := range graph.Nodes {
		c := coords[i]
		graph.Nodes[i].Position2D = &c
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
