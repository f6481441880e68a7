package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"FintechReviews/internal/domain"
	"FintechReviews/internal/infrastructure/csvfile"
	"FintechReviews/internal/ports"
)

// Analyzer enriches cleaned files with sentiment columns and writes one
// combined analyzed file. A per-row analyzer failure leaves that row's
// sentiment fields empty and continues.
type Analyzer struct {
	analyzer ports.SentimentAnalyzer
	logger   *slog.Logger
}

// NewAnalyzer wires the sentiment service client.
func NewAnalyzer(analyzer ports.SentimentAnalyzer, logger *slog.Logger) *Analyzer {
	return &Analyzer{analyzer: analyzer, logger: logger}
}

// Run reads each cleaned file, scores every row, and writes the combined
// result to outPath. A file that cannot be read is skipped with an error log;
// an error is returned only when no input file could be read.
func (a *Analyzer) Run(ctx context.Context, inPaths []string, outPath string) (int, error) {
	var combined []domain.AnalyzedReview
	readFiles := 0

	for _, path := range inPaths {
		rows, err := csvfile.ReadAnalyzed(path)
		if err != nil {
			a.logger.Error("skipping unreadable file", "file", path, "error", err)
			continue
		}
		readFiles++

		for _, row := range rows {
			if a.analyzer != nil {
				result, err := a.analyzer.Analyze(ctx, row.Review)
				if err != nil {
					a.logger.Warn("sentiment analysis failed", "bank", row.Bank, "error", err)
				} else {
					score := result.Score
					row.SentimentLabel = result.Label
					row.SentimentScore = &score
				}
			}
			combined = append(combined, row)
		}
		a.logger.Info("analyzed file", "file", path, "rows", len(rows))
	}

	if readFiles == 0 && len(inPaths) > 0 {
		return 0, fmt.Errorf("no cleaned file could be read: %w", domain.ErrConnectivity)
	}

	if err := csvfile.WriteAnalyzed(outPath, combined); err != nil {
		return 0, fmt.Errorf("write %s: %w", outPath, err)
	}

	a.logger.Info("saved analyzed reviews", "file", outPath, "rows", len(combined))
	return len(combined), nil
}
