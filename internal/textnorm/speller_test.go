package textnorm

import "testing"

func TestDefaultSpellerCorrectsTypos(t *testing.T) {
	t.Parallel()

	speller := NewDefaultSpeller()

	if got := speller.Correct("transfre"); got != "transfer" {
		t.Fatalf("Correct(transfre) = %q, want transfer", got)
	}
	if got := speller.Correct("aplication"); got != "application" {
		t.Fatalf("Correct(aplication) = %q, want application", got)
	}
}

func TestDefaultSpellerKeepsKnownWords(t *testing.T) {
	t.Parallel()

	speller := NewDefaultSpeller()

	for _, word := range []string{"transfer", "balance", "crash"} {
		if got := speller.Correct(word); got != word {
			t.Fatalf("Correct(%s) = %q, want the word unchanged", word, got)
		}
	}
}

func TestCleanerWithDefaultSpeller(t *testing.T) {
	t.Parallel()

	cleaner := NewCleaner(NewDefaultSpeller())

	if got := cleaner.Clean("Fast trasnfer!"); got != "fast transfer" {
		t.Fatalf("Clean = %q, want \"fast transfer\"", got)
	}
}
