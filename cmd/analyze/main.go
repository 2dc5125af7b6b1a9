package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/argumentlab/miner/internal/config"
	"github.com/argumentlab/miner/internal/core"
	"github.com/argumentlab/miner/internal/llm"
	"github.com/argumentlab/miner/internal/logx"
)

// One-shot analysis: read a transcript, run the pipeline once, write the
// result JSON.
func main() {
	var (
		input     = flag.String("input", "", "transcript file ('-' or empty for stdin)")
		strategy  = flag.String("strategy", "ibis", "mining strategy (ibis, toulmin)")
		colorMode = flag.String("color", "", "colour encoding (blend, hue)")
		noTopic   = flag.Bool("no-topic", false, "skip embedding and projection")
		out       = flag.String("out", "", "output file (default stdout)")
		cfgPath   = flag.String("config", "config/config.toml", "config file path")
	)
	flag.Parse()

	logx.Init(os.Getenv("ARGMINER_ENV"))
	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		cfg = config.Default()
	}
	if err := cfg.ApplyEnv(); err != nil {
		logx.Fatal().Err(err).Msg("failed to apply environment overrides")
	}

	text, err := readInput(*input)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to read transcript")
	}

	ctx := context.Background()
	llmClient, embedderClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialize LLM client")
	}

	miner := core.NewMiner(llmClient, embedderClient, cfg)

	topic := !*noTopic
	result, err := miner.Analyze(ctx, core.AnalyzeRequest{
		Text:          text,
		Strategy:      *strategy,
		TopicAnalysis: &topic,
		ColorMode:     *colorMode,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("analysis failed")
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to encode result")
	}
	data = append(data, '\n')

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logx.Fatal().Err(err).Msg("failed to write output")
	}
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
