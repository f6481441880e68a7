package textnorm

import (
	"log/slog"
	"strings"

	"FintechReviews/internal/domain"
)

// Pipeline holds the two named normalization chains. Strict is the primary
// path; Lenient is the fallback selected when Strict leaves too few rows.
type Pipeline struct {
	cleaner  *Cleaner
	detector LanguageDetector
	logger   *slog.Logger
}

// NewPipeline wires the cleaner and language detector.
func NewPipeline(cleaner *Cleaner, detector LanguageDetector, logger *slog.Logger) *Pipeline {
	return &Pipeline{cleaner: cleaner, detector: detector, logger: logger}
}

// Strict runs the aggressive chain: dedupe, drop empty, language filter,
// clean text, drop empty, canonicalize date, project.
func (p *Pipeline) Strict(rows []domain.RawReview) []domain.CleanedReview {
	rows = dedupe(rows)
	p.debug("after removing duplicates", "rows", len(rows))

	rows = dropEmptyText(rows)
	p.debug("after removing empty reviews", "rows", len(rows))

	kept := rows[:0:len(rows)]
	for _, row := range rows {
		if p.isEnglish(row.Text) {
			kept = append(kept, row)
		}
	}
	rows = kept
	p.debug("after keeping english reviews", "rows", len(rows))

	out := make([]domain.CleanedReview, 0, len(rows))
	for _, row := range rows {
		review := p.cleaner.Clean(row.Text)
		if review == "" {
			continue
		}
		date, err := CanonicalDate(row.Date)
		if err != nil {
			continue
		}
		out = append(out, domain.CleanedReview{
			Review: review,
			Rating: row.Rating,
			Date:   date,
			Bank:   row.Bank,
			Source: row.Source,
		})
	}
	p.debug("after cleaning text and dates", "rows", len(out))
	return out
}

// Lenient runs the permissive chain from the original raw rows: dedupe, drop
// empty, strip emoji and URLs, lowercase, still exclude Ethiopic-script rows,
// canonicalize date. No language detection, no spell correction.
func (p *Pipeline) Lenient(rows []domain.RawReview) []domain.CleanedReview {
	rows = dedupe(rows)
	rows = dropEmptyText(rows)

	out := make([]domain.CleanedReview, 0, len(rows))
	for _, row := range rows {
		review := p.cleaner.CleanLenient(row.Text)
		if review == "" || ContainsEthiopic(review) {
			continue
		}
		date, err := CanonicalDate(row.Date)
		if err != nil {
			continue
		}
		out = append(out, domain.CleanedReview{
			Review: review,
			Rating: row.Rating,
			Date:   date,
			Bank:   row.Bank,
			Source: row.Source,
		})
	}
	p.debug("after lenient cleaning", "rows", len(out))
	return out
}

// isEnglish excludes Ethiopic script outright, then consults the detector.
// A missing detector keeps the row (acquisition already filters by language).
func (p *Pipeline) isEnglish(text string) bool {
	if ContainsEthiopic(text) {
		return false
	}
	if p.detector == nil {
		return true
	}
	return p.detector.IsEnglish(text)
}

func dedupe(rows []domain.RawReview) []domain.RawReview {
	seen := make(map[string]struct{}, len(rows))
	out := make([]domain.RawReview, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.Text]; ok {
			continue
		}
		seen[row.Text] = struct{}{}
		out = append(out, row)
	}
	return out
}

func dropEmptyText(rows []domain.RawReview) []domain.RawReview {
	out := rows[:0:len(rows)]
	for _, row := range rows {
		if strings.TrimSpace(row.Text) != "" {
			out = append(out, row)
		}
	}
	return out
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
