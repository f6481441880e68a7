package textnorm

import (
	"testing"

	"FintechReviews/internal/domain"
)

// asciiDetector stands in for the statistical model: anything pure ASCII is
// English, anything else is not.
type asciiDetector struct{}

func (asciiDetector) IsEnglish(text string) bool {
	for _, r := range text {
		if r > 127 {
			return false
		}
	}
	return true
}

type rejectAll struct{}

func (rejectAll) IsEnglish(string) bool { return false }

func newTestPipeline(detector LanguageDetector) *Pipeline {
	speller := NewSpeller([]string{"great", "app", "slow", "transfers"})
	return NewPipeline(NewCleaner(speller), detector, nil)
}

func TestStrictDeduplicates(t *testing.T) {
	t.Parallel()

	row := domain.RawReview{
		Text:   "Great app!!! \U0001F600 http://x.com",
		Rating: 5,
		Date:   "2024-01-15",
		Bank:   "BankA",
		Source: "Google Play",
	}

	out := newTestPipeline(asciiDetector{}).Strict([]domain.RawReview{row, row})
	if len(out) != 1 {
		t.Fatalf("expected 1 row after dedupe, got %d", len(out))
	}
	if out[0].Review != "great app" {
		t.Fatalf("unexpected review text: %q", out[0].Review)
	}
	if out[0].Date != "2024-01-15" {
		t.Fatalf("unexpected date: %q", out[0].Date)
	}
	if out[0].Bank != "BankA" || out[0].Rating != 5 || out[0].Source != "Google Play" {
		t.Fatalf("row fields not carried through: %+v", out[0])
	}
}

func TestStrictDropsEthiopicAndDetectorRejects(t *testing.T) {
	t.Parallel()

	rows := []domain.RawReview{
		{Text: "መልካም አፕሊኬሽን", Rating: 4, Date: "2024-02-01", Bank: "BankA", Source: "Google Play"},
		{Text: "tres mauvaise application étrange", Rating: 1, Date: "2024-02-01", Bank: "BankA", Source: "Google Play"},
		{Text: "slow transfers", Rating: 2, Date: "2024-02-01", Bank: "BankA", Source: "Google Play"},
	}

	out := newTestPipeline(asciiDetector{}).Strict(rows)
	if len(out) != 1 {
		t.Fatalf("expected only the English row, got %d rows", len(out))
	}
	if out[0].Review != "slow transfers" {
		t.Fatalf("unexpected survivor: %q", out[0].Review)
	}
}

func TestStrictDropsEmptyAndBadDates(t *testing.T) {
	t.Parallel()

	rows := []domain.RawReview{
		{Text: "   ", Rating: 3, Date: "2024-02-01", Bank: "BankA", Source: "Google Play"},
		{Text: "!!! 123", Rating: 3, Date: "2024-02-01", Bank: "BankA", Source: "Google Play"},
		{Text: "great app", Rating: 5, Date: "not a date", Bank: "BankA", Source: "Google Play"},
	}

	if out := newTestPipeline(asciiDetector{}).Strict(rows); len(out) != 0 {
		t.Fatalf("expected all rows dropped, got %d", len(out))
	}
}

func TestLenientSkipsDetectionAndSpelling(t *testing.T) {
	t.Parallel()

	rows := []domain.RawReview{
		{Text: "Great app!!! \U0001F600 http://x.com", Rating: 5, Date: "2024-01-15", Bank: "BankA", Source: "Google Play"},
		{Text: "መልካም", Rating: 4, Date: "2024-01-15", Bank: "BankA", Source: "Google Play"},
	}

	// The detector would reject everything; lenient must not consult it.
	out := newTestPipeline(rejectAll{}).Lenient(rows)
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if out[0].Review != "great app!!!" {
		t.Fatalf("lenient cleaning altered punctuation: %q", out[0].Review)
	}
}

func TestStrictWithoutDetectorKeepsLatinRows(t *testing.T) {
	t.Parallel()

	rows := []domain.RawReview{
		{Text: "great app", Rating: 5, Date: "2024-01-15", Bank: "BankA", Source: "Google Play"},
	}

	if out := newTestPipeline(nil).Strict(rows); len(out) != 1 {
		t.Fatalf("expected row kept without a detector, got %d", len(out))
	}
}
