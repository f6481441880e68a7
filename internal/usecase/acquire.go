package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"FintechReviews/internal/config"
	"FintechReviews/internal/domain"
	"FintechReviews/internal/feed"
	"FintechReviews/internal/infrastructure/csvfile"
)

// Acquirer fetches raw reviews per bank and writes one CSV per bank.
// A failure for one bank never aborts the others.
type Acquirer struct {
	registry *feed.Registry
	cfg      config.AcquisitionConfig
	logger   *slog.Logger
	now      func() time.Time
}

// NewAcquirer wires the feed registry with acquisition settings.
func NewAcquirer(registry *feed.Registry, cfg config.AcquisitionConfig, logger *slog.Logger) *Acquirer {
	return &Acquirer{
		registry: registry,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Run processes every configured bank in name order and returns how many
// succeeded. An error is returned only when no bank produced a file.
func (a *Acquirer) Run(ctx context.Context) (int, error) {
	if a.registry == nil {
		return 0, fmt.Errorf("feed registry is not configured: %w", domain.ErrValidation)
	}

	source, err := a.registry.Resolve("google-play")
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, domain.ErrValidation)
	}

	banks := make([]string, 0, len(a.cfg.Banks))
	for bank := range a.cfg.Banks {
		banks = append(banks, bank)
	}
	sort.Strings(banks)

	succeeded := 0
	for _, bank := range banks {
		a.logger.Info("fetching reviews", "bank", bank)

		rows, err := source.Fetch(ctx, feed.Request{
			AppID:    a.cfg.Banks[bank],
			Bank:     bank,
			Language: a.cfg.Language,
			Country:  a.cfg.Country,
			Count:    a.cfg.Count,
		})
		if err != nil {
			a.logger.Error("fetch failed", "bank", bank, "error", err)
			continue
		}

		path := a.outputPath(bank)
		if err := csvfile.WriteRaw(path, rows); err != nil {
			a.logger.Error("write failed", "bank", bank, "file", path, "error", err)
			continue
		}

		a.logger.Info("saved reviews", "bank", bank, "count", len(rows), "file", path)
		succeeded++
	}

	if succeeded == 0 && len(banks) > 0 {
		return 0, fmt.Errorf("no bank succeeded: %w", domain.ErrFeed)
	}
	return succeeded, nil
}

func (a *Acquirer) outputPath(bank string) string {
	name := fmt.Sprintf("%s_reviews_%s.csv",
		strings.ReplaceAll(bank, " ", "_"),
		a.now().Format("20060102_150405"))
	return filepath.Join(a.cfg.OutputDir, name)
}
