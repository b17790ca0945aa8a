package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/abdhesh369/Portfolio-sub001/internal/infrastructure/config"
	"github.com/abdhesh369/Portfolio-sub001/internal/infrastructure/db"
	httpapi "github.com/abdhesh369/Portfolio-sub001/internal/interface/http"
)

func main() {
	cfg, err := config.LoadFromFile("config.yaml")
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("load config failed")
	}

	logger := newLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Info().Str("addr", cfg.HTTP.Addr).Str("env", cfg.HTTP.Env).Msg("configuration loaded")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Warn().Err(err).Msg("database connection failed, falling back to in-memory store")
		pool = nil
	} else if pool == nil {
		logger.Info().Msg("no DB_DSN provided; running with in-memory store only")
	} else {
		defer pool.Close()
		logger.Info().Msg("database connected")
	}

	server, err := httpapi.NewServer(cfg, pool, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("build server failed")
	}
	defer server.Close()

	logger.Info().Str("addr", cfg.HTTP.Addr).Msg("starting HTTP server")
	if err := http.ListenAndServe(cfg.HTTP.Addr, server.Handler()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || cfg.Log.Level == "" {
		level = zerolog.InfoLevel
	}

	var out = os.Stderr
	logger := zerolog.New(out)
	if cfg.Log.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	return logger.Level(level).With().Timestamp().Logger()
}
