package main

import (
	"context"
	"os"

	"FintechReviews/internal/config"
	"FintechReviews/internal/infrastructure/storage"
	"FintechReviews/internal/logging"
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

	if version, err := pool.ServerVersion(ctx); err == nil {
		logger.Info("connected to postgres", "version", version)
	}

	if err := storage.InitSchema(ctx, pool, logging.Component(logger, "schema")); err != nil {
		logger.Error("schema initialization failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database initialization completed")
}
