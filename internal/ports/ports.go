package ports

import (
	"context"

	"FintechReviews/internal/domain"
)

// SentimentAnalyzer scores a single cleaned review text.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (domain.SentimentResult, error)
}

// ReviewStore persists a batch of reviews in one transaction.
// The returned slice holds the assigned row ids, in input order.
type ReviewStore interface {
	InsertBatch(ctx context.Context, reviews []domain.StoredReview) ([]int64, error)
}

// ThemeStore attaches extracted themes to a stored review.
type ThemeStore interface {
	InsertThemes(ctx context.Context, reviewID int64, themes []domain.Theme) error
}

// SummaryStore recomputes per-bank aggregates from stored rows.
type SummaryStore interface {
	Refresh(ctx context.Context) ([]domain.AnalysisSummary, error)
}
