package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"FintechReviews/internal/domain"
	"FintechReviews/internal/infrastructure/csvfile"
	"FintechReviews/internal/ports"
	"FintechReviews/internal/textnorm"
	"FintechReviews/internal/themes"
)

// Loader inserts analyzed rows into the relational store as one batch, then
// attaches extracted themes to each inserted review.
type Loader struct {
	store      ports.ReviewStore
	themeStore ports.ThemeStore
	logger     *slog.Logger
}

// NewLoader wires the review and theme stores. A nil theme store disables
// theme attachment.
func NewLoader(store ports.ReviewStore, themeStore ports.ThemeStore, logger *slog.Logger) *Loader {
	return &Loader{store: store, themeStore: themeStore, logger: logger}
}

// Run reads csvPath and inserts every valid row in a single transaction.
// Rows with empty review text, missing rating, or empty bank name are skipped
// with a warning; an unparseable date is stored as NULL, not skipped.
// Theme rows are inserted after the batch commits; a theme failure is logged
// and does not undo the load.
func (l *Loader) Run(ctx context.Context, csvPath string) (int, error) {
	rows, err := csvfile.ReadAnalyzed(csvPath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", csvPath, err)
	}
	l.logger.Info("loading reviews", "file", csvPath, "rows", len(rows))

	batch := make([]domain.StoredReview, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Review) == "" || row.Rating == 0 || strings.TrimSpace(row.Bank) == "" {
			l.logger.Warn("skipping row due to missing required fields", "bank", row.Bank)
			continue
		}

		stored := domain.StoredReview{
			Text:           row.Review,
			Rating:         row.Rating,
			Bank:           row.Bank,
			SentimentScore: row.SentimentScore,
		}
		if date, err := textnorm.ParseDate(row.Date); err == nil {
			stored.ReviewDate = &date
		}
		if label := strings.TrimSpace(row.SentimentLabel); label != "" {
			stored.SentimentLabel = &label
		}
		batch = append(batch, stored)
	}

	ids, err := l.store.InsertBatch(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", csvPath, err)
	}

	if l.themeStore != nil {
		l.attachThemes(ctx, batch, ids)
	}
	return len(ids), nil
}

func (l *Loader) attachThemes(ctx context.Context, batch []domain.StoredReview, ids []int64) {
	attached := 0
	for i, id := range ids {
		extracted := themes.Extract(batch[i].Text)
		if len(extracted) == 0 {
			continue
		}
		if err := l.themeStore.InsertThemes(ctx, id, extracted); err != nil {
			l.logger.Warn("theme attachment failed", "bank", batch[i].Bank, "error", err)
			continue
		}
		attached += len(extracted)
	}
	l.logger.Info("attached themes", "count", attached)
}
