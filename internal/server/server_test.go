package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argumentlab/miner/internal/config"
	"github.com/argumentlab/miner/internal/core"
	"github.com/argumentlab/miner/internal/llm"
	"github.com/argumentlab/miner/internal/samples"
)

type mockLLM struct {
	response string
	err      error
}

func (m *mockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return m.response, m.err
}

type mockEmbedder struct {
	dims int
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	v, err := m.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return v[0], nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i := range texts {
		v := make([]float32, m.dims)
		v[i%m.dims] = 1
		v[(i+1)%m.dims] = float32(i)
		vecs[i] = v
	}
	return vecs, nil
}

const graphResponse = `{
	"nodes": [
		{"id": "n1", "type": "issue", "content": "Which DB?", "speaker": "Tanaka", "sequence": 1},
		{"id": "n2", "type": "position", "content": "Postgres", "speaker": "Sato", "sequence": 2}
	],
	"edges": [{"source": "n2", "target": "n1", "label": "proposes"}]
}`

func testRouter(t *testing.T, client llm.LLMClient, embedder llm.EmbedderClient) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.txt"), []byte("Tanaka: hello"), 0o644))

	m := core.NewMiner(client, embedder, config.Default())
	return New(m, samples.NewStore(dir)).SetupRouter()
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	r := testRouter(t, &mockLLM{response: graphResponse}, &mockEmbedder{dims: 3})

	w := doJSON(r, http.MethodPost, "/analyze", gin.H{"text": "Tanaka: which DB?\nSato: Postgres."})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AnalysisID string          `json:"analysis_id"`
		Strategy   string          `json:"strategy"`
		Graph      json.RawMessage `json:"graph"`
		TopicMap   json.RawMessage `json:"topic_map"`
		Timeline   json.RawMessage `json:"timeline"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AnalysisID)
	assert.Equal(t, "ibis", resp.Strategy)
	assert.NotEmpty(t, resp.Graph)
	assert.NotEmpty(t, resp.TopicMap)
	assert.NotEmpty(t, resp.Timeline)
}

func TestAnalyzeEmptyTextIsBadRequest(t *testing.T) {
	r := testRouter(t, &mockLLM{response: graphResponse}, nil)

	w := doJSON(r, http.MethodPost, "/analyze", gin.H{"text": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeUnknownStrategyIsBadRequest(t *testing.T) {
	r := testRouter(t, &mockLLM{response: graphResponse}, nil)

	w := doJSON(r, http.MethodPost, "/analyze", gin.H{"text": "x", "strategy": "socratic"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeUnknownColorModeIsBadRequest(t *testing.T) {
	r := testRouter(t, &mockLLM{response: graphResponse}, nil)

	w := doJSON(r, http.MethodPost, "/analyze", gin.H{"text": "x", "color_mode": "plaid"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown color mode")
}

func TestAnalyzePipelineFailureIsGeneric(t *testing.T) {
	r := testRouter(t, &mockLLM{err: errors.New("upstream timeout")}, nil)

	w := doJSON(r, http.MethodPost, "/analyze", gin.H{"text": "x"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	// The caller sees one generic message, not the underlying error.
	assert.Contains(t, w.Body.String(), "Analysis failed")
	assert.NotContains(t, w.Body.String(), "upstream timeout")
}

func TestHealthReportsEmbedder(t *testing.T) {
	r := testRouter(t, &mockLLM{}, &mockEmbedder{dims: 3})
	w := doJSON(r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"embedder":true`)

	r = testRouter(t, &mockLLM{}, nil)
	w = doJSON(r, http.MethodGet, "/healthz", nil)
	assert.Contains(t, w.Body.String(), `"embedder":false`)
}

func TestStrategiesEndpoint(t *testing.T) {
	r := testRouter(t, &mockLLM{}, nil)
	w := doJSON(r, http.MethodGet, "/strategies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ibis")
	assert.Contains(t, w.Body.String(), "toulmin")
}

func TestSampleEndpoints(t *testing.T) {
	r := testRouter(t, &mockLLM{}, nil)

	w := doJSON(r, http.MethodGet, "/samples", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "demo.txt")

	w = doJSON(r, http.MethodGet, "/samples/demo.txt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tanaka: hello")

	w = doJSON(r, http.MethodGet, "/samples/missing.txt", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestViewerServesHTML(t *testing.T) {
	r := testRouter(t, &mockLLM{}, nil)
	w := doJSON(r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "vega-embed")
}
