package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"FintechReviews/internal/domain"
	"FintechReviews/internal/ports"
)

// SummaryRepository maintains the one-row-per-bank analysis_summary table.
type SummaryRepository struct {
	pool   *Pool
	logger *slog.Logger
}

var _ ports.SummaryStore = (*SummaryRepository)(nil)

// NewSummaryRepository wires the shared pool.
func NewSummaryRepository(pool *Pool, logger *slog.Logger) *SummaryRepository {
	return &SummaryRepository{pool: pool, logger: logger}
}

// Refresh recomputes per-bank totals, average sentiment, and the theme
// distribution from the live tables, then upserts analysis_summary keyed on
// bank_name. Returns the summaries written.
func (r *SummaryRepository) Refresh(ctx context.Context) ([]domain.AnalysisSummary, error) {
	conn, err := r.pool.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %v: %w", err, domain.ErrConnectivity)
	}
	defer conn.Release()

	summaries, err := r.bankTotals(ctx, conn)
	if err != nil {
		return nil, err
	}

	distributions, err := r.themeDistributions(ctx, conn)
	if err != nil {
		return nil, err
	}

	for i := range summaries {
		summaries[i].ThemeDistribution = distributions[summaries[i].Bank]
	}

	for _, summary := range summaries {
		if err := r.upsert(ctx, conn, summary); err != nil {
			return nil, err
		}
	}

	if r.logger != nil {
		r.logger.Info("refreshed summaries", "banks", len(summaries))
	}
	return summaries, nil
}

func (r *SummaryRepository) bankTotals(ctx context.Context, conn *pgxpool.Conn) ([]domain.AnalysisSummary, error) {
	query, args, err := psql.Select("bank_name", "COUNT(*)", "AVG(sentiment_score)").
		From("reviews").
		GroupBy("bank_name").
		OrderBy("bank_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build totals query: %v: %w", err, domain.ErrValidation)
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query totals: %v: %w", err, domain.ErrConnectivity)
	}
	defer rows.Close()

	var summaries []domain.AnalysisSummary
	for rows.Next() {
		var s domain.AnalysisSummary
		if err := rows.Scan(&s.Bank, &s.TotalReviews, &s.AvgSentimentScore); err != nil {
			return nil, fmt.Errorf("scan totals: %v: %w", err, domain.ErrConnectivity)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate totals: %v: %w", err, domain.ErrConnectivity)
	}
	return summaries, nil
}

// themeDistributions returns, per bank, each theme's share of that bank's
// theme rows.
func (r *SummaryRepository) themeDistributions(ctx context.Context, conn *pgxpool.Conn) (map[string]map[string]float64, error) {
	query, args, err := psql.Select("r.bank_name", "t.theme_name", "COUNT(*)").
		From("themes t").
		Join("reviews r ON r.id = t.review_id").
		GroupBy("r.bank_name", "t.theme_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build themes query: %v: %w", err, domain.ErrValidation)
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query themes: %v: %w", err, domain.ErrConnectivity)
	}
	defer rows.Close()

	counts := map[string]map[string]int{}
	for rows.Next() {
		var bank, theme string
		var count int
		if err := rows.Scan(&bank, &theme, &count); err != nil {
			return nil, fmt.Errorf("scan themes: %v: %w", err, domain.ErrConnectivity)
		}
		if counts[bank] == nil {
			counts[bank] = map[string]int{}
		}
		counts[bank][theme] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate themes: %v: %w", err, domain.ErrConnectivity)
	}

	distributions := make(map[string]map[string]float64, len(counts))
	for bank, themes := range counts {
		total := 0
		for _, count := range themes {
			total += count
		}
		shares := make(map[string]float64, len(themes))
		for theme, count := range themes {
			shares[theme] = float64(count) / float64(total)
		}
		distributions[bank] = shares
	}
	return distributions, nil
}

func (r *SummaryRepository) upsert(ctx context.Context, conn *pgxpool.Conn, summary domain.AnalysisSummary) error {
	query, args, err := upsertSummarySQL(summary)
	if err != nil {
		return fmt.Errorf("build upsert: %v: %w", err, domain.ErrValidation)
	}

	if _, err := conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert summary for %s: %v: %w", summary.Bank, err, domain.ErrConnectivity)
	}
	return nil
}

func upsertSummarySQL(summary domain.AnalysisSummary) (string, []interface{}, error) {
	distribution := summary.ThemeDistribution
	if distribution == nil {
		distribution = map[string]float64{}
	}
	encoded, err := json.Marshal(distribution)
	if err != nil {
		return "", nil, fmt.Errorf("encode distribution: %w", err)
	}

	return psql.Insert("analysis_summary").
		Columns("bank_name", "total_reviews", "avg_sentiment_score", "theme_distribution").
		Values(summary.Bank, summary.TotalReviews, summary.AvgSentimentScore, sq.Expr("?::jsonb", string(encoded))).
		Suffix(`ON CONFLICT (bank_name) DO UPDATE
			SET total_reviews = EXCLUDED.total_reviews,
			    avg_sentiment_score = EXCLUDED.avg_sentiment_score,
			    theme_distribution = EXCLUDED.theme_distribution,
			    created_at = CURRENT_TIMESTAMP`).
		ToSql()
}
