package storage

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"FintechReviews/internal/domain"
	"FintechReviews/internal/ports"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ReviewRepository persists review and theme rows.
type ReviewRepository struct {
	pool   *Pool
	logger *slog.Logger
}

var _ ports.ReviewStore = (*ReviewRepository)(nil)
var _ ports.ThemeStore = (*ReviewRepository)(nil)

// NewReviewRepository wires the shared pool.
func NewReviewRepository(pool *Pool, logger *slog.Logger) *ReviewRepository {
	return &ReviewRepository{pool: pool, logger: logger}
}

// InsertBatch inserts all reviews on one pooled connection in a single
// transaction, committed once at the end. Any failure aborts the whole batch.
// Returns the assigned ids in input order.
func (r *ReviewRepository) InsertBatch(ctx context.Context, reviews []domain.StoredReview) ([]int64, error) {
	conn, err := r.pool.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %v: %w", err, domain.ErrConnectivity)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %v: %w", err, domain.ErrConnectivity)
	}
	defer tx.Rollback(ctx)

	ids := make([]int64, 0, len(reviews))
	for _, review := range reviews {
		query, args, err := insertReviewSQL(review)
		if err != nil {
			return nil, fmt.Errorf("build insert: %v: %w", err, domain.ErrValidation)
		}

		var id int64
		if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return nil, fmt.Errorf("insert review for %s: %v: %w", review.Bank, err, domain.ErrConnectivity)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit batch: %v: %w", err, domain.ErrConnectivity)
	}

	if r.logger != nil {
		r.logger.Info("loaded reviews", "count", len(ids))
	}
	return ids, nil
}

// InsertThemes attaches theme rows to an already stored review.
func (r *ReviewRepository) InsertThemes(ctx context.Context, reviewID int64, themes []domain.Theme) error {
	if len(themes) == 0 {
		return nil
	}

	conn, err := r.pool.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %v: %w", err, domain.ErrConnectivity)
	}
	defer conn.Release()

	query, args, err := insertThemesSQL(reviewID, themes)
	if err != nil {
		return fmt.Errorf("build insert: %v: %w", err, domain.ErrValidation)
	}

	if _, err := conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert themes: %v: %w", err, domain.ErrConnectivity)
	}
	return nil
}

func insertThemesSQL(reviewID int64, themes []domain.Theme) (string, []interface{}, error) {
	builder := psql.Insert("themes").Columns("review_id", "theme_name", "confidence_score")
	for _, theme := range themes {
		builder = builder.Values(reviewID, theme.Name, theme.Confidence)
	}
	return builder.ToSql()
}

func insertReviewSQL(review domain.StoredReview) (string, []interface{}, error) {
	return psql.Insert("reviews").
		Columns("review_text", "rating", "review_date", "bank_name", "sentiment_label", "sentiment_score").
		Values(review.Text, review.Rating, review.ReviewDate, review.Bank, review.SentimentLabel, review.SentimentScore).
		Suffix("RETURNING id").
		ToSql()
}
