package textnorm

import (
	"fmt"
	"strings"
	"time"

	"FintechReviews/internal/domain"
)

// dateLayouts covers the formats seen in feed exports, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseDate parses a date string against the known layout list.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date: %w", domain.ErrParse)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q: %w", value, domain.ErrParse)
}

// CanonicalDate renders a parseable date as YYYY-MM-DD.
func CanonicalDate(value string) (string, error) {
	t, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}
