package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"FintechReviews/internal/config"
	"FintechReviews/internal/infrastructure/sentiment"
	"FintechReviews/internal/logging"
	"FintechReviews/internal/usecase"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	if cfg.Analysis.Endpoint == "" {
		logger.Error("no sentiment endpoint configured")
		os.Exit(1)
	}

	client := sentiment.NewClient(cfg.Analysis.Endpoint, cfg.Analysis.APIKey)
	analyzer := usecase.NewAnalyzer(client, logging.Component(logger, "analyze"))

	inPaths := make([]string, 0, len(cfg.Normalization.Files))
	for _, name := range cfg.Normalization.Files {
		inPaths = append(inPaths, filepath.Join(cfg.Analysis.CleanedDir, strings.Replace(name, "reviews", "cleaned", 1)))
	}

	if _, err := analyzer.Run(ctx, inPaths, cfg.Analysis.OutputPath); err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}
