package main

import (
	"context"
	"os"

	"FintechReviews/internal/config"
	"FintechReviews/internal/feed"
	"FintechReviews/internal/infrastructure/playstore"
	"FintechReviews/internal/logging"
	"FintechReviews/internal/usecase"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	registry := feed.NewRegistry()
	registry.Register(playstore.NewClient(
		cfg.Feed.URL,
		cfg.Feed.StoreURL,
		nil,
		logging.Component(logger, "feed.google-play"),
	))

	acquirer := usecase.NewAcquirer(registry, cfg.Acquisition, logging.Component(logger, "acquire"))

	succeeded, err := acquirer.Run(ctx)
	if err != nil {
		logger.Error("acquisition failed", "error", err)
		os.Exit(1)
	}
	logger.Info("acquisition finished", "banks", succeeded)
}
