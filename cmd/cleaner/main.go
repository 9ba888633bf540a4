package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/madhan/dataset-cleaner/pkg/audit"
	"github.com/madhan/dataset-cleaner/pkg/config"
	"github.com/madhan/dataset-cleaner/pkg/runner"
)

func main() {
	// A missing .env file is fine; the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	r, err := runner.NewRunner(cfg, logger)
	if err != nil {
		logger.Error("Failed to create runner", zap.Error(err))
		os.Exit(1)
	}

	if cfg.Postgres != nil {
		sink, err := audit.NewPostgresSink(cfg.Postgres, logger)
		if err != nil {
			logger.Error("Failed to create postgres sink", zap.Error(err))
			os.Exit(1)
		}
		defer sink.Close()
		r = r.WithSink(sink)
	}

	if _, err := r.Run(context.Background()); err != nil {
		logger.Error("Cleaning run failed", zap.Error(err))
		os.Exit(1)
	}
}

// newLogger builds a zap logger from the configured level and format
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var zapCfg zap.Config
	if cfg.LogFormat == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	return zapCfg.Build()
}
