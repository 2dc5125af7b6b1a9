package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	EmbeddingModel string `toml:"embedding_model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
}

type ServerConfig struct {
	Port       string `toml:"port"`
	SamplesDir string `toml:"samples_dir"`
}

// StrategyPrompts holds one template per mining strategy. Each template
// carries a single %s slot for the transcript text.
type StrategyPrompts struct {
	IBIS    string `toml:"ibis"`
	Toulmin string `toml:"toulmin"`
}

type AnalysisConfig struct {
	// ColorMode selects the node colour encoding: "blend" or "hue".
	ColorMode string `toml:"color_mode"`
	// TopicAnalysis enables the embedding/projection stage by default.
	TopicAnalysis bool `toml:"topic_analysis"`
}

type Config struct {
	LLM      LLMConfig       `toml:"llm"`
	Server   ServerConfig    `toml:"server"`
	Prompts  StrategyPrompts `toml:"prompts"`
	Analysis AnalysisConfig  `toml:"analysis"`
}

// envOverrides mirrors the settings that may be supplied through the
// environment (prefix ARGMINER, e.g. ARGMINER_LLM_PROVIDER).
type envOverrides struct {
	LLMProvider       string `envconfig:"LLM_PROVIDER"`
	LLMModel          string `envconfig:"LLM_MODEL"`
	LLMEmbeddingModel string `envconfig:"LLM_EMBEDDING_MODEL"`
	LLMAPIKey         string `envconfig:"LLM_API_KEY"`
	LLMBaseURL        string `envconfig:"LLM_BASE_URL"`
	Port              string `envconfig:"PORT"`
	ColorMode         string `envconfig:"COLOR_MODE"`
}

func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:       "openai",
			Model:          "gpt-4o-mini",
			EmbeddingModel: "text-embedding-3-small",
			APIKey:         os.Getenv("OPENAI_API_KEY"),
		},
		Server: ServerConfig{
			Port:       "8080",
			SamplesDir: "data/samples",
		},
		Prompts: StrategyPrompts{
			IBIS:    DefaultIBISPrompt,
			Toulmin: DefaultToulminPrompt,
		},
		Analysis: AnalysisConfig{
			ColorMode:     "blend",
			TopicAnalysis: true,
		},
	}
}

// Load reads a TOML config file over the built-in defaults. Keys absent
// from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays ARGMINER_* environment variables onto the config.
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envconfig.Process("argminer", &env); err != nil {
		return fmt.Errorf("failed to process environment: %w", err)
	}

	setIf(&c.LLM.Provider, env.LLMProvider)
	setIf(&c.LLM.Model, env.LLMModel)
	setIf(&c.LLM.EmbeddingModel, env.LLMEmbeddingModel)
	setIf(&c.LLM.APIKey, env.LLMAPIKey)
	setIf(&c.LLM.BaseURL, env.LLMBaseURL)
	setIf(&c.Server.Port, env.Port)
	setIf(&c.Analysis.ColorMode, env.ColorMode)
	return nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
