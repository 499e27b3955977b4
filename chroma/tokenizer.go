// Package chroma bridges the chroma lexer ecosystem to TextMate scope
// stacks.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/tmtheme"
)

// Compile-time interface verification.
var _ tmtheme.Tokenizer = (*Tokenizer)(nil)

// Tokenizer produces scope-annotated tokens using chroma lexers. Chroma
// token types are coarser than full TextMate grammars, so every stack is the
// language root scope plus at most one token scope.
type Tokenizer struct{}

// NewTokenizer creates a new chroma-based tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits source code into scope-annotated tokens for the given
// language. Returns nil if the language is not supported or lexing fails.
// Returns an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(language, source string) []tmtheme.Token {
	if source == "" {
		return []tmtheme.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	root := tmtheme.StackOf(RootScope(lexer.Config().Name))

	var tokens []tmtheme.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		scopes := root
		if scope := ScopeForTokenType(token.Type); scope != "" {
			scopes = root.Push(scope)
		}
		tokens = append(tokens, tmtheme.Token{
			Text:   token.Value,
			Scopes: scopes,
		})
	}

	return tokens
}

// RootScope derives the TextMate source scope for a chroma language name,
// e.g. "Go" becomes "source.go".
func RootScope(language string) string {
	name := strings.ToLower(language)
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "+", "p")
	name = strings.ReplaceAll(name, "#", "sharp")
	return "source." + name
}
