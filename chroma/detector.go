package chroma

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/tmtheme"
)

// Compile-time interface verification.
var _ tmtheme.LanguageDetector = (*Detector)(nil)

// Detector detects programming languages from file paths using chroma.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the language name for the given path,
// or an empty string if the language cannot be determined.
func (d *Detector) DetectFromPath(path string) string {
	filename := filepath.Base(path)

	lexer := lexers.Match(filename)
	if lexer == nil {
		return ""
	}

	return lexer.Config().Name
}
