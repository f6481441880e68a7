package main

import (
	"os"
	"path/filepath"
	"strings"

	"FintechReviews/internal/config"
	"FintechReviews/internal/logging"
	"FintechReviews/internal/textnorm"
	"FintechReviews/internal/usecase"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	speller := textnorm.NewDefaultSpeller()
	if cfg.Normalization.Dictionary != "" {
		words, err := textnorm.LoadDictionary(cfg.Normalization.Dictionary)
		if err != nil {
			logger.Warn("dictionary unavailable, using built-in word list", "path", cfg.Normalization.Dictionary, "error", err)
		} else {
			speller = textnorm.NewSpeller(words)
		}
	}

	pipeline := textnorm.NewPipeline(
		textnorm.NewCleaner(speller),
		textnorm.NewLinguaDetector(),
		logging.Component(logger, "textnorm"),
	)
	preprocessor := usecase.NewPreprocessor(pipeline, cfg.Normalization.MinReviews, logging.Component(logger, "preprocess"))

	failed := 0
	for _, name := range cfg.Normalization.Files {
		inPath := filepath.Join(cfg.Normalization.RawDir, name)
		outPath := filepath.Join(cfg.Normalization.CleanedDir, strings.Replace(name, "reviews", "cleaned", 1))

		if _, err := preprocessor.Run(inPath, outPath); err != nil {
			logger.Error("preprocessing failed", "file", inPath, "error", err)
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
