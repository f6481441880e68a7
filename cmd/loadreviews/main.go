package main

import (
	"context"
	"os"

	"FintechReviews/internal/config"
	"FintechReviews/internal/infrastructure/storage"
	"FintechReviews/internal/logging"
	"FintechReviews/internal/usecase"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	pool, err := storage.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("cannot open database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	reviews := storage.NewReviewRepository(pool, logging.Component(logger, "storage.reviews"))
	loader := usecase.NewLoader(reviews, reviews, logging.Component(logger, "load"))

	inserted, err := loader.Run(ctx, cfg.Load.InputPath)
	if err != nil {
		logger.Error("load failed", "error", err)
		os.Exit(1)
	}
	logger.Info("load finished", "inserted", inserted)

	// The load is already committed; a summary failure is not fatal.
	summaries := storage.NewSummaryRepository(pool, logging.Component(logger, "storage.summary"))
	if _, err := summaries.Refresh(ctx); err != nil {
		logger.Warn("summary refresh failed", "error", err)
	}
}
