// Package mock provides test doubles for tmtheme interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/tmtheme"
)

// Compile-time interface verification.
var (
	_ tmtheme.Tokenizer        = (*Tokenizer)(nil)
	_ tmtheme.LanguageDetector = (*Detector)(nil)
	_ tmtheme.Loader           = (*Loader)(nil)
	_ tmtheme.Renderer         = (*Renderer)(nil)
	_ tmtheme.Viewer           = (*Viewer)(nil)
)

// Tokenizer is a mock implementation of tmtheme.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(language, source string) []tmtheme.Token
}

func (t *Tokenizer) Tokenize(language, source string) []tmtheme.Token {
	return t.TokenizeFn(language, source)
}

// Detector is a mock implementation of tmtheme.LanguageDetector.
type Detector struct {
	DetectFromPathFn func(path string) string
}

func (d *Detector) DetectFromPath(path string) string {
	return d.DetectFromPathFn(path)
}

// Loader is a mock implementation of tmtheme.Loader.
type Loader struct {
	LoadFn func(path string) (*tmtheme.RawTheme, error)
}

func (l *Loader) Load(path string) (*tmtheme.RawTheme, error) {
	return l.LoadFn(path)
}

// Renderer is a mock implementation of tmtheme.Renderer.
type Renderer struct {
	RenderFn func(tokens []tmtheme.Token) string
}

func (r *Renderer) Render(tokens []tmtheme.Token) string {
	return r.RenderFn(tokens)
}

// Viewer is a mock implementation of tmtheme.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, content string) error
}

func (v *Viewer) View(ctx context.Context, content string) error {
	return v.ViewFn(ctx, content)
}
