package storage

import (
	"context"
	"fmt"
	"log/slog"

	"FintechReviews/internal/domain"
)

// DDL is idempotent; tables are ordered so foreign keys resolve.
var createTables = []struct {
	name string
	ddl  string
}{
	{"reviews", `
		CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			review_text TEXT NOT NULL,
			rating INTEGER CHECK (rating >= 1 AND rating <= 5),
			review_date TIMESTAMP,
			bank_name VARCHAR(50) NOT NULL,
			sentiment_label VARCHAR(20),
			sentiment_score FLOAT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"themes", `
		CREATE TABLE IF NOT EXISTS themes (
			id SERIAL PRIMARY KEY,
			review_id INTEGER REFERENCES reviews(id) ON DELETE CASCADE,
			theme_name VARCHAR(50) NOT NULL,
			confidence_score FLOAT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"analysis_summary", `
		CREATE TABLE IF NOT EXISTS analysis_summary (
			id SERIAL PRIMARY KEY,
			bank_name VARCHAR(50) NOT NULL,
			total_reviews INTEGER NOT NULL,
			avg_sentiment_score FLOAT,
			theme_distribution JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(bank_name)
		)`},
}

var createIndexes = []struct {
	name string
	ddl  string
}{
	{"reviews_bank_name_idx", `CREATE INDEX IF NOT EXISTS reviews_bank_name_idx ON reviews(bank_name)`},
	{"reviews_sentiment_label_idx", `CREATE INDEX IF NOT EXISTS reviews_sentiment_label_idx ON reviews(sentiment_label)`},
	{"themes_review_id_idx", `CREATE INDEX IF NOT EXISTS themes_review_id_idx ON themes(review_id)`},
	{"themes_theme_name_idx", `CREATE INDEX IF NOT EXISTS themes_theme_name_idx ON themes(theme_name)`},
}

// InitSchema creates all tables and indexes in a single transaction.
// Safe to run repeatedly.
func InitSchema(ctx context.Context, pool *Pool, logger *slog.Logger) error {
	conn, err := pool.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %v: %w", err, domain.ErrConnectivity)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %v: %w", err, domain.ErrConnectivity)
	}
	defer tx.Rollback(ctx)

	for _, table := range createTables {
		if logger != nil {
			logger.Info("creating table", "table", table.name)
		}
		if _, err := tx.Exec(ctx, table.ddl); err != nil {
			return fmt.Errorf("create table %s: %v: %w", table.name, err, domain.ErrConnectivity)
		}
	}

	for _, index := range createIndexes {
		if logger != nil {
			logger.Info("creating index", "index", index.name)
		}
		if _, err := tx.Exec(ctx, index.ddl); err != nil {
			return fmt.Errorf("create index %s: %v: %w", index.name, err, domain.ErrConnectivity)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit schema: %v: %w", err, domain.ErrConnectivity)
	}
	return nil
}
