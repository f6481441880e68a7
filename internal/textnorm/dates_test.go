package textnorm

import (
	"errors"
	"regexp"
	"testing"

	"FintechReviews/internal/domain"
)

func TestCanonicalDate(t *testing.T) {
	t.Parallel()

	canonical := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	inputs := []string{
		"2024-01-15",
		"2024-01-15 08:30:00",
		"2024-01-15T08:30:00Z",
		"2024/01/15",
		"01/15/2024",
		"Jan 15, 2024",
		"15 Jan 2024",
	}

	for _, input := range inputs {
		got, err := CanonicalDate(input)
		if err != nil {
			t.Fatalf("CanonicalDate(%q) returned error: %v", input, err)
		}
		if !canonical.MatchString(got) {
			t.Fatalf("CanonicalDate(%q) = %q, not canonical", input, got)
		}
		if got != "2024-01-15" {
			t.Fatalf("CanonicalDate(%q) = %q, want 2024-01-15", input, got)
		}
	}
}

func TestCanonicalDateRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "soon", "2024-13-45"} {
		if _, err := CanonicalDate(input); !errors.Is(err, domain.ErrParse) {
			t.Fatalf("CanonicalDate(%q): expected ErrParse, got %v", input, err)
		}
	}
}
