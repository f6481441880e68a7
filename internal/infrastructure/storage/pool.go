// Package storage persists reviews, themes, and per-bank summaries into
// Postgres through an explicitly owned connection pool.
package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"FintechReviews/internal/config"
	"FintechReviews/internal/domain"
)

// Pool wraps a fixed-size pgx pool. The caller owns the lifecycle: construct
// once, pass by reference into repositories, Close only at process shutdown.
type Pool struct {
	db *pgxpool.Pool
}

// NewPool opens a pool with 1..10 connections and verifies connectivity.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %v: %w", err, domain.ErrConnectivity)
	}
	poolCfg.MinConns = 1
	poolCfg.MaxConns = 10

	db, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %v: %w", err, domain.ErrConnectivity)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %v: %w", err, domain.ErrConnectivity)
	}

	return &Pool{db: db}, nil
}

// Close releases every pooled connection. Call once at process shutdown.
func (p *Pool) Close() {
	p.db.Close()
}

// ServerVersion reports the Postgres version string.
func (p *Pool) ServerVersion(ctx context.Context) (string, error) {
	conn, err := p.db.Acquire(ctx)
	if err != nil {
		return "", fmt.Errorf("acquire connection: %v: %w", err, domain.ErrConnectivity)
	}
	defer conn.Release()

	var version string
	if err := conn.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", fmt.Errorf("select version: %v: %w", err, domain.ErrConnectivity)
	}
	return version, nil
}
