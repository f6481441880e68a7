package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"FintechReviews/internal/domain"
	"FintechReviews/internal/infrastructure/csvfile"
)

type scriptedAnalyzer struct {
	failOn string
}

func (a scriptedAnalyzer) Analyze(_ context.Context, text string) (domain.SentimentResult, error) {
	if text == a.failOn {
		return domain.SentimentResult{}, domain.ErrConnectivity
	}
	return domain.SentimentResult{Label: "positive", Score: 0.9}, nil
}

func writeCleanedFixture(t *testing.T, name, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	content := "review,rating,date,bank,source\n" + rows
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestAnalyzeContinuesPastRowFailures(t *testing.T) {
	t.Parallel()

	inPath := writeCleanedFixture(t, "BankA_cleaned_data.csv",
		`good app,4,2024-01-15,BankA,Google Play
slow transfer,2,2024-01-16,BankA,Google Play
`)
	outPath := filepath.Join(t.TempDir(), "final_sentiment_analysis.csv")

	a := NewAnalyzer(scriptedAnalyzer{failOn: "slow transfer"}, discardLogger())
	count, err := a.Run(context.Background(), []string{inPath}, outPath)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected both rows in the output, got %d", count)
	}

	rows, err := csvfile.ReadAnalyzed(outPath)
	if err != nil {
		t.Fatalf("read analyzed output: %v", err)
	}
	if rows[0].SentimentLabel != "positive" || rows[0].SentimentScore == nil || *rows[0].SentimentScore != 0.9 {
		t.Fatalf("scored row not carried through: %+v", rows[0])
	}
	if rows[1].SentimentLabel != "" || rows[1].SentimentScore != nil {
		t.Fatalf("failed row must keep empty sentiment fields: %+v", rows[1])
	}
}

func TestAnalyzeSkipsUnreadableFiles(t *testing.T) {
	t.Parallel()

	inPath := writeCleanedFixture(t, "BankA_cleaned_data.csv",
		`good app,4,2024-01-15,BankA,Google Play
`)
	missing := filepath.Join(t.TempDir(), "absent.csv")
	outPath := filepath.Join(t.TempDir(), "final_sentiment_analysis.csv")

	a := NewAnalyzer(scriptedAnalyzer{}, discardLogger())
	count, err := a.Run(context.Background(), []string{missing, inPath}, outPath)
	if err != nil {
		t.Fatalf("Run must skip the unreadable file, got error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 analyzed row, got %d", count)
	}
}

func TestAnalyzeFailsWhenNoFileReadable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := NewAnalyzer(scriptedAnalyzer{}, discardLogger())

	_, err := a.Run(context.Background(),
		[]string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv")},
		filepath.Join(dir, "out.csv"))
	if !errors.Is(err, domain.ErrConnectivity) {
		t.Fatalf("expected ErrConnectivity, got %v", err)
	}
}
