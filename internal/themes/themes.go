// Package themes assigns topic labels to cleaned review text by keyword
// lookup. Every label is one of a fixed set of banking-app concerns.
package themes

import (
	"sort"
	"strings"

	"FintechReviews/internal/domain"
)

var keywordSets = map[string][]string{
	"Account Access Issues": {
		"login", "log", "logged", "logout", "password", "otp", "pin",
		"register", "registration", "verify", "verification", "reset",
		"session", "fingerprint", "activate", "activation",
	},
	"Transaction Performance": {
		"transfer", "transfers", "transferred", "transaction",
		"transactions", "send", "sending", "sent", "payment", "payments",
		"slow", "delay", "delayed", "pending", "fast", "instant",
	},
	"Reliability": {
		"crash", "crashed", "crashes", "crashing", "error", "errors",
		"bug", "buggy", "bugs", "fails", "failure", "stuck", "stopped",
		"maintenance", "restart",
	},
	"User Interface & Experience": {
		"interface", "design", "easy", "simple", "smooth", "beautiful",
		"clean", "modern", "menu", "screen", "usable",
	},
	"Customer Support": {
		"support", "service", "services", "help", "helpful", "response",
		"customer", "branch", "agent", "call", "contact",
	},
}

// Extract returns the themes whose keywords occur in text, sorted by name.
// Confidence is the share of the theme's keyword set found in the text, so a
// single stray keyword scores low and never reaches 1.0 on short reviews.
func Extract(text string) []domain.Theme {
	present := make(map[string]bool)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		present[token] = true
	}

	var extracted []domain.Theme
	for name, keywords := range keywordSets {
		hits := 0
		for _, keyword := range keywords {
			if present[keyword] {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		extracted = append(extracted, domain.Theme{
			Name:       name,
			Confidence: float64(hits) / float64(len(keywords)),
		})
	}

	sort.Slice(extracted, func(i, j int) bool { return extracted[i].Name < extracted[j].Name })
	return extracted
}
