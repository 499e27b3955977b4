package main_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/tmtheme"
	main "github.com/fwojciec/tmtheme/cmd/tmview"
	"github.com/fwojciec/tmtheme/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run_Success(t *testing.T) {
	t.Parallel()

	source := "package main\n"
	tokens := []tmtheme.Token{{Text: source, Scopes: tmtheme.StackOf("source.go")}}

	var detectedPath, tokenizedLanguage, tokenizedSource, viewedContent string

	app := &main.App{
		Source: strings.NewReader(source),
		Path:   "main.go",
		Detector: &mock.Detector{
			DetectFromPathFn: func(path string) string {
				detectedPath = path
				return "Go"
			},
		},
		Tokenizer: &mock.Tokenizer{
			TokenizeFn: func(language, source string) []tmtheme.Token {
				tokenizedLanguage = language
				tokenizedSource = source
				return tokens
			},
		},
		Renderer: &mock.Renderer{
			RenderFn: func(got []tmtheme.Token) string {
				assert.Equal(t, tokens, got)
				return "styled output"
			},
		},
		Viewer: &mock.Viewer{
			ViewFn: func(ctx context.Context, content string) error {
				viewedContent = content
				return nil
			},
		},
	}

	err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "main.go", detectedPath, "detector should receive the file path")
	assert.Equal(t, "Go", tokenizedLanguage, "tokenizer should receive the detected language")
	assert.Equal(t, source, tokenizedSource, "tokenizer should receive the source")
	assert.Equal(t, "styled output", viewedContent, "viewer should receive rendered content")
}

func TestApp_Run_EmptySource(t *testing.T) {
	t.Parallel()

	app := &main.App{
		Source:   strings.NewReader(""),
		Detector: &mock.Detector{DetectFromPathFn: func(string) string { return "" }},
	}

	err := app.Run(context.Background())

	require.ErrorIs(t, err, main.ErrNoSource)
}

func TestApp_Run_UnsupportedLanguage(t *testing.T) {
	t.Parallel()

	source := "plain text"
	var rendered []tmtheme.Token

	app := &main.App{
		Source:    strings.NewReader(source),
		Path:      "notes.txt",
		Detector:  &mock.Detector{DetectFromPathFn: func(string) string { return "" }},
		Tokenizer: &mock.Tokenizer{TokenizeFn: func(string, string) []tmtheme.Token { return nil }},
		Renderer: &mock.Renderer{
			RenderFn: func(tokens []tmtheme.Token) string {
				rendered = tokens
				return source
			},
		},
		Viewer: &mock.Viewer{ViewFn: func(context.Context, string) error { return nil }},
	}

	err := app.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, rendered, 1, "unsupported language falls back to one plain token")
	assert.Equal(t, source, rendered[0].Text)
	assert.Nil(t, rendered[0].Scopes)
}

func TestApp_Run_ViewerError(t *testing.T) {
	t.Parallel()

	viewErr := errors.New("terminal unavailable")
	app := &main.App{
		Source:    strings.NewReader("x"),
		Detector:  &mock.Detector{DetectFromPathFn: func(string) string { return "" }},
		Tokenizer: &mock.Tokenizer{TokenizeFn: func(string, string) []tmtheme.Token { return nil }},
		Renderer:  &mock.Renderer{RenderFn: func([]tmtheme.Token) string { return "x" }},
		Viewer:    &mock.Viewer{ViewFn: func(context.Context, string) error { return viewErr }},
	}

	err := app.Run(context.Background())

	require.ErrorIs(t, err, viewErr)
}
