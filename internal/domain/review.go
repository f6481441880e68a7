package domain

import "time"

// RawReview is one unprocessed record as fetched from the review feed.
// Serialized with the acquisition CSV header.
type RawReview struct {
	Text   string `csv:"review_text"`
	Rating int    `csv:"rating"`
	Date   string `csv:"date"`
	Bank   string `csv:"bank_name"`
	Source string `csv:"source"`
}

// CleanedReview is a RawReview after the normalization chain.
// Review is non-empty; Date is canonical YYYY-MM-DD.
type CleanedReview struct {
	Review string `csv:"review"`
	Rating int    `csv:"rating"`
	Date   string `csv:"date"`
	Bank   string `csv:"bank"`
	Source string `csv:"source"`
}

// AnalyzedReview is a CleanedReview enriched with sentiment columns.
// The sentiment fields stay zero-valued when the input file lacks them.
type AnalyzedReview struct {
	CleanedReview
	SentimentLabel string   `csv:"sentiment_label"`
	SentimentScore *float64 `csv:"sentiment_score"`
}

// StoredReview is the row shape persisted into the reviews table.
// Nil pointers map to NULL columns.
type StoredReview struct {
	ID             int64
	Text           string
	Rating         int
	ReviewDate     *time.Time
	Bank           string
	SentimentLabel *string
	SentimentScore *float64
	CreatedAt      time.Time
}

// Theme is a named topic extracted from a single stored review.
// Theme rows cascade-delete with their review.
type Theme struct {
	ReviewID   int64
	Name       string
	Confidence float64
}

// AnalysisSummary aggregates stored reviews per bank; at most one row per bank.
type AnalysisSummary struct {
	Bank              string
	TotalReviews      int
	AvgSentimentScore *float64
	ThemeDistribution map[string]float64
}

// SentimentResult is the analyzer verdict for one review text.
type SentimentResult struct {
	Label string
	Score float64
}
