package usecase

import (
	"fmt"
	"log/slog"

	"FintechReviews/internal/infrastructure/csvfile"
	"FintechReviews/internal/textnorm"
)

// Preprocessor turns one raw file into one cleaned file, falling back to the
// lenient chain when the strict chain leaves too few rows.
type Preprocessor struct {
	pipeline   *textnorm.Pipeline
	minReviews int
	logger     *slog.Logger
}

// NewPreprocessor wires the normalization pipeline with the row-count policy.
func NewPreprocessor(pipeline *textnorm.Pipeline, minReviews int, logger *slog.Logger) *Preprocessor {
	return &Preprocessor{pipeline: pipeline, minReviews: minReviews, logger: logger}
}

// Run reads inPath, normalizes, and writes outPath. When the strict result is
// below the minimum the lenient result replaces it as-is; staying below the
// minimum after that is a warning, never an error.
func (p *Preprocessor) Run(inPath, outPath string) (int, error) {
	raw, err := csvfile.ReadRaw(inPath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", inPath, err)
	}
	p.logger.Info("processing raw reviews", "file", inPath, "rows", len(raw))

	cleaned := p.pipeline.Strict(raw)
	if len(cleaned) < p.minReviews {
		p.logger.Warn("too few reviews after strict cleaning, rerunning lenient",
			"rows", len(cleaned), "minimum", p.minReviews)
		cleaned = p.pipeline.Lenient(raw)
		if len(cleaned) < p.minReviews {
			p.logger.Warn("still below minimum after lenient cleaning",
				"rows", len(cleaned), "minimum", p.minReviews)
		}
	}

	if err := csvfile.WriteCleaned(outPath, cleaned); err != nil {
		return 0, fmt.Errorf("write %s: %w", outPath, err)
	}

	p.logger.Info("saved cleaned reviews", "file", outPath, "rows", len(cleaned))
	return len(cleaned), nil
}
