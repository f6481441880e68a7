package textnorm

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
)

var (
	urlExpr      = regexp.MustCompile(`http\S+|www\S+`)
	nonLatinExpr = regexp.MustCompile(`[^a-zA-Z\s]`)
	spaceExpr    = regexp.MustCompile(`\s+`)
)

// ContainsEthiopic reports whether text holds any rune in the Ethiopic
// blocks U+1200-U+137F or U+1380-U+139F.
func ContainsEthiopic(text string) bool {
	for _, r := range text {
		if (r >= 0x1200 && r <= 0x137F) || (r >= 0x1380 && r <= 0x139F) {
			return true
		}
	}
	return false
}

// Cleaner normalizes review text. A nil Speller disables correction.
type Cleaner struct {
	speller *Speller
}

// NewCleaner wires an optional spell corrector.
func NewCleaner(speller *Speller) *Cleaner {
	return &Cleaner{speller: speller}
}

// Clean applies the strict chain: strip emoji, strip URL tokens, replace
// everything outside the basic Latin alphabet and whitespace with a space,
// collapse whitespace, lowercase, trim, then spell-correct token by token.
// Returns "" when nothing survives; spelling is skipped in that case.
func (c *Cleaner) Clean(text string) string {
	text = gomoji.RemoveEmojis(text)
	text = urlExpr.ReplaceAllString(text, "")
	text = nonLatinExpr.ReplaceAllString(text, " ")
	text = strings.ToLower(strings.TrimSpace(spaceExpr.ReplaceAllString(text, " ")))
	if text == "" {
		return ""
	}
	if c.speller == nil {
		return text
	}

	words := strings.Split(text, " ")
	for i, word := range words {
		if utf8.RuneCountInString(word) > 1 {
			words[i] = c.speller.Correct(word)
		}
	}
	return strings.Join(words, " ")
}

// CleanLenient applies the permissive chain used by the fallback pipeline:
// only emoji and URL tokens are removed, then lowercase and trim.
// Punctuation and digits are retained.
func (c *Cleaner) CleanLenient(text string) string {
	text = gomoji.RemoveEmojis(text)
	text = urlExpr.ReplaceAllString(text, "")
	return strings.TrimSpace(strings.ToLower(text))
}
