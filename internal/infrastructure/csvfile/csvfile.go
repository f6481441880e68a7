// Package csvfile reads and writes the tabular files the stages exchange.
package csvfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"FintechReviews/internal/domain"
)

// ReadRaw loads an acquisition output file.
func ReadRaw(path string) ([]domain.RawReview, error) {
	var rows []domain.RawReview
	if err := read(path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadAnalyzed loads a cleaned or analyzed file; sentiment columns are
// optional and stay zero-valued when absent.
func ReadAnalyzed(path string) ([]domain.AnalyzedReview, error) {
	var rows []domain.AnalyzedReview
	if err := read(path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// WriteRaw writes acquisition rows, creating parent directories as needed.
func WriteRaw(path string, rows []domain.RawReview) error {
	return write(path, rows)
}

// WriteCleaned writes normalization output, overwriting any existing file.
func WriteCleaned(path string, rows []domain.CleanedReview) error {
	return write(path, rows)
}

// WriteAnalyzed writes the combined sentiment-analysis output.
func WriteAnalyzed(path string, rows []domain.AnalyzedReview) error {
	return write(path, rows)
}

func read(path string, out any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %v: %w", path, err, domain.ErrConnectivity)
	}
	defer file.Close()

	if err := gocsv.UnmarshalFile(file, out); err != nil {
		return fmt.Errorf("decode %s: %v: %w", path, err, domain.ErrParse)
	}
	return nil
}

func write(path string, rows any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %v: %w", dir, err, domain.ErrConnectivity)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %v: %w", path, err, domain.ErrConnectivity)
	}

	if err := gocsv.MarshalFile(rows, file); err != nil {
		_ = file.Close()
		return fmt.Errorf("encode %s: %v: %w", path, err, domain.ErrParse)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %v: %w", path, err, domain.ErrConnectivity)
	}
	return nil
}
