// Package tmtheme resolves TextMate theme rules against scope stacks.
package tmtheme

import (
	"context"
	"encoding/json"
	"strings"
)

// FontStyle is a bitmask of font style flags, with NotSet meaning
// "inherit from a less specific rule or the theme default".
type FontStyle int

// Font style flags.
const (
	FontStyleNotSet FontStyle = -1

	FontStyleNone          FontStyle = 0
	FontStyleItalic        FontStyle = 1
	FontStyleBold          FontStyle = 2
	FontStyleUnderline     FontStyle = 4
	FontStyleStrikethrough FontStyle = 8
)

// String returns the space-separated keyword form used by theme files.
func (f FontStyle) String() string {
	if f == FontStyleNotSet {
		return "not set"
	}
	if f == FontStyleNone {
		return "none"
	}
	var parts []string
	if f&FontStyleItalic != 0 {
		parts = append(parts, "italic")
	}
	if f&FontStyleBold != 0 {
		parts = append(parts, "bold")
	}
	if f&FontStyleUnderline != 0 {
		parts = append(parts, "underline")
	}
	if f&FontStyleStrikethrough != 0 {
		parts = append(parts, "strikethrough")
	}
	return strings.Join(parts, " ")
}

// StyleAttributes is a fully resolved style for a token: font style flags
// plus color map ids. A zero color id means "not set, use the default".
type StyleAttributes struct {
	FontStyle    FontStyle
	ForegroundID int
	BackgroundID int
}

// ScopeStack is the chain of enclosing scopes for a token, innermost first,
// with parent pointers toward the outermost scope. A nil *ScopeStack is the
// empty stack.
type ScopeStack struct {
	Parent    *ScopeStack
	ScopeName string
}

// Push returns a new stack with name as the innermost scope.
func (s *ScopeStack) Push(name string) *ScopeStack {
	return &ScopeStack{Parent: s, ScopeName: name}
}

// StackOf builds a scope stack from names ordered outermost to innermost.
// Returns nil for no names.
func StackOf(names ...string) *ScopeStack {
	var s *ScopeStack
	for _, name := range names {
		s = s.Push(name)
	}
	return s
}

// Segments returns the scope names ordered outermost to innermost.
func (s *ScopeStack) Segments() []string {
	if s == nil {
		return nil
	}
	var names []string
	for cur := s; cur != nil; cur = cur.Parent {
		names = append(names, cur.ScopeName)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// String renders the stack as space-separated scope names, outermost first.
func (s *ScopeStack) String() string {
	return strings.Join(s.Segments(), " ")
}

// RawSetting is the style record of a raw theme entry. Pointer fields
// distinguish "absent" (inherit) from "present but empty".
type RawSetting struct {
	FontStyle  *string `json:"fontStyle,omitempty"`
	Foreground *string `json:"foreground,omitempty"`
	Background *string `json:"background,omitempty"`
}

// ScopeField holds a raw scope selector, which theme files write either as
// a single comma-separated string or as an explicit list of selectors.
type ScopeField struct {
	// Selectors is the explicit list form. Used as-is when List is true.
	Selectors []string
	// Raw is the single string form, possibly comma-separated.
	Raw string
	// List reports which form was present in the source.
	List bool
}

// UnmarshalJSON accepts both a JSON string and a JSON array of strings.
func (f *ScopeField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = ScopeField{Raw: s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*f = ScopeField{Selectors: list, List: true}
	return nil
}

// MarshalJSON writes back whichever form was parsed.
func (f ScopeField) MarshalJSON() ([]byte, error) {
	if f.List {
		return json.Marshal(f.Selectors)
	}
	return json.Marshal(f.Raw)
}

// RawThemeSetting is one entry of a raw theme: a scope selector plus style
// settings. Entries without settings are ignored by the parser.
type RawThemeSetting struct {
	Name     string      `json:"name,omitempty"`
	Scope    ScopeField  `json:"scope,omitempty"`
	Settings *RawSetting `json:"settings"`
}

// RawTheme mirrors the in-memory shape of a parsed .tmTheme/JSON theme file.
type RawTheme struct {
	Name     string            `json:"name,omitempty"`
	Settings []RawThemeSetting `json:"settings"`
}

// Token is a run of text with the scope stack a grammar assigned to it.
// A nil Scopes means the text carries no scope information.
type Token struct {
	Text   string
	Scopes *ScopeStack
}

// Tokenizer splits source code into scope-annotated tokens.
type Tokenizer interface {
	// Tokenize splits source code into tokens for the given language.
	// Returns nil if the language is not supported.
	Tokenize(language, source string) []Token
}

// LanguageDetector determines the programming language from a file path.
type LanguageDetector interface {
	// DetectFromPath returns the language name for the given path,
	// or an empty string if the language cannot be determined.
	DetectFromPath(path string) string
}

// Loader reads a raw theme definition from a file.
type Loader interface {
	Load(path string) (*RawTheme, error)
}

// Renderer turns scope-annotated tokens into a displayable string.
type Renderer interface {
	Render(tokens []Token) string
}

// Viewer displays rendered content and blocks until dismissed.
type Viewer interface {
	View(ctx context.Context, content string) error
}
