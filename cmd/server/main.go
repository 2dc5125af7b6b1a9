package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/argumentlab/miner/internal/config"
	"github.com/argumentlab/miner/internal/logx"
	"github.com/argumentlab/miner/internal/server"
)

func main() {
	logx.Init(os.Getenv("ARGMINER_ENV"))

	if err := godotenv.Load(); err != nil {
		logx.Debug().Msg("no .env file found, using environment as-is")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logx.Warn().Err(err).Str("path", cfgPath).Msg("could not load config file, using defaults")
		cfg = config.Default()
	}
	if err := cfg.ApplyEnv(); err != nil {
		logx.Fatal().Err(err).Msg("failed to apply environment overrides")
	}

	srv, err := server.Bootstrap(context.Background(), cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialize server")
	}

	r := srv.SetupRouter()
	logx.Info().Str("port", cfg.Server.Port).Str("provider", cfg.LLM.Provider).Msg("starting server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logx.Fatal().Err(err).Msg("server stopped")
	}
}
