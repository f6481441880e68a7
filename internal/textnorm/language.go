package textnorm

import "github.com/pemistahl/lingua-go"

// LanguageDetector decides whether a review is written in the target language.
type LanguageDetector interface {
	IsEnglish(text string) bool
}

// LinguaDetector backs LanguageDetector with a statistical model.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

var _ LanguageDetector = (*LinguaDetector)(nil)

// NewLinguaDetector builds a detector over all supported languages.
// Construction is expensive; build once per process.
func NewLinguaDetector() *LinguaDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()
	return &LinguaDetector{detector: detector}
}

// IsEnglish reports whether the detector classifies text as English.
// Ambiguous or undetectable text counts as not English.
func (d *LinguaDetector) IsEnglish(text string) bool {
	language, ok := d.detector.DetectLanguageOf(text)
	return ok && language == lingua.English
}
