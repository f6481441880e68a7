package textnorm

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sajari/fuzzy"

	"FintechReviews/internal/domain"
)

//go:embed dictionary.txt
var defaultDictionary string

// Speller replaces tokens with their nearest dictionary correction.
type Speller struct {
	model *fuzzy.Model
}

// NewSpeller trains a correction model from the given word list.
func NewSpeller(words []string) *Speller {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(words)
	return &Speller{model: model}
}

// NewDefaultSpeller trains the correction model on the embedded word list,
// so spelling works without any dictionary file configured.
func NewDefaultSpeller() *Speller {
	words, err := scanWords(strings.NewReader(defaultDictionary))
	if err != nil {
		// Reading from an in-memory string cannot fail.
		panic(err)
	}
	return NewSpeller(words)
}

// Correct returns the model's suggestion for word, or word itself when the
// model has none.
func (s *Speller) Correct(word string) string {
	if suggestion := s.model.SpellCheck(word); suggestion != "" {
		return suggestion
	}
	return word
}

// LoadDictionary reads one word per line, skipping blanks and # comments.
func LoadDictionary(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %v: %w", err, domain.ErrConnectivity)
	}
	defer file.Close()

	words, err := scanWords(file)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %v: %w", err, domain.ErrParse)
	}
	return words, nil
}

func scanWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, strings.ToLower(word))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
