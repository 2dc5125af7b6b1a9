package server

import (
	"context"
	_ "embed"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/argumentlab/miner/internal/config"
	"github.com/argumentlab/miner/internal/core"
	"github.com/argumentlab/miner/internal/core/plot"
	"github.com/argumentlab/miner/internal/llm"
	"github.com/argumentlab/miner/internal/logx"
	"github.com/argumentlab/miner/internal/samples"
)

//go:embed viewer.html
var viewerHTML []byte

type Server struct {
	Miner   *core.Miner
	Samples *samples.Store
}

// New builds the server from an already-wired miner and sample store.
func New(m *core.Miner, st *samples.Store) *Server {
	return &Server{Miner: m, Samples: st}
}

// Bootstrap wires the LLM clients and the miner from config.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Server, error) {
	llmClient, embedderClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}
	m := core.NewMiner(llmClient, embedderClient, cfg)
	return New(m, samples.NewStore(cfg.Server.SamplesDir)), nil
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/", s.Viewer)
	r.GET("/healthz", s.Health)
	r.GET("/strategies", s.Strategies)
	r.GET("/samples", s.ListSamples)
	r.GET("/samples/:name", s.GetSample)
	r.POST("/analyze", s.Analyze)

	return r
}

type AnalyzeRequest struct {
	Text          string `json:"text"`
	Strategy      string `json:"strategy"`
	TopicAnalysis *bool  `json:"topic_analysis"`
	ColorMode     string `json:"color_mode"`
}

// Analyze runs one full pipeline pass. This is the single error boundary
// of the chain: bad input maps to 400, anything that fails further down
// surfaces as one generic 502.
func (s *Server) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := s.Miner.Analyze(c.Request.Context(), core.AnalyzeRequest{
		Text:          req.Text,
		Strategy:      req.Strategy,
		TopicAnalysis: req.TopicAnalysis,
		ColorMode:     req.ColorMode,
	})
	if err != nil {
		if errors.Is(err, core.ErrEmptyTranscript) || errors.Is(err, core.ErrUnknownStrategy) || errors.Is(err, plot.ErrUnknownColorMode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logx.Error().Err(err).Msg("analysis failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Analysis failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) Strategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": s.Miner.Strategies()})
}

// Health reports liveness plus whether an embedder is configured; a
// missing embedder is surfaced here, not enforced before analysis.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"embedder": s.Miner.HasEmbedder(),
	})
}

func (s *Server) ListSamples(c *gin.Context) {
	names, err := s.Samples.List()
	if err != nil {
		logx.Error().Err(err).Msg("failed to list samples")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list samples"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"samples": names})
}

func (s *Server) GetSample(c *gin.Context) {
	content, err := s.Samples.Read(c.Param("name"))
	if err != nil {
		if errors.Is(err, samples.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sample not found"})
			return
		}
		logx.Error().Err(err).Msg("failed to read sample")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read sample"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": c.Param("name"), "text": content})
}

func (s *Server) Viewer(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", viewerHTML)
}
