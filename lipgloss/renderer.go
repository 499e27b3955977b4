// Package lipgloss renders resolved tokens as ANSI-styled text using the
// Lipgloss styling library.
package lipgloss

import (
	"strings"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/tmtheme"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Compile-time interface verification.
var _ tmtheme.Renderer = (*Renderer)(nil)

// Renderer resolves each token's scope stack against a theme and styles the
// token text with the resulting attributes.
type Renderer struct {
	theme    *tmtheme.Theme
	renderer *lipglosslib.Renderer
}

// NewRenderer creates a renderer for the given theme. A nil lipgloss
// renderer selects the default one; tests inject a renderer with a pinned
// color profile for deterministic output.
func NewRenderer(theme *tmtheme.Theme, renderer *lipglosslib.Renderer) *Renderer {
	if renderer == nil {
		renderer = lipglosslib.DefaultRenderer()
	}
	return &Renderer{theme: theme, renderer: renderer}
}

// Style converts resolved style attributes into a lipgloss style. Unset
// fields (zero color ids, NotSet/None font style) leave the terminal
// defaults in place.
func (r *Renderer) Style(attrs tmtheme.StyleAttributes) lipglosslib.Style {
	s := r.renderer.NewStyle()
	if fg := r.theme.GetColor(attrs.ForegroundID); fg != "" {
		s = s.Foreground(lipglosslib.Color(NormalizeHex(fg)))
	}
	if bg := r.theme.GetColor(attrs.BackgroundID); bg != "" {
		s = s.Background(lipglosslib.Color(NormalizeHex(bg)))
	}
	if attrs.FontStyle > tmtheme.FontStyleNone {
		if attrs.FontStyle&tmtheme.FontStyleItalic != 0 {
			s = s.Italic(true)
		}
		if attrs.FontStyle&tmtheme.FontStyleBold != 0 {
			s = s.Bold(true)
		}
		if attrs.FontStyle&tmtheme.FontStyleUnderline != 0 {
			s = s.Underline(true)
		}
		if attrs.FontStyle&tmtheme.FontStyleStrikethrough != 0 {
			s = s.Strikethrough(true)
		}
	}
	return s
}

// Render styles every token with its resolved attributes. Tokens whose
// scope stacks match no rule are emitted unstyled so the terminal default
// shows through.
func (r *Renderer) Render(tokens []tmtheme.Token) string {
	var sb strings.Builder
	lines := splitTokensByLine(tokens)
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, tok := range line {
			attrs, ok := r.theme.Match(tok.Scopes)
			if !ok {
				sb.WriteString(tok.Text)
				continue
			}
			sb.WriteString(r.Style(attrs).Render(tok.Text))
		}
	}
	return sb.String()
}

// NormalizeHex expands short and alpha hex forms to the #rrggbb form
// lipgloss expects. Alpha channels are dropped; unparseable values pass
// through unchanged.
func NormalizeHex(hex string) string {
	switch len(hex) {
	case 5: // #rgba
		hex = hex[:4]
	case 9: // #rrggbbaa
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.Hex()
}

// splitTokensByLine splits a flat list of tokens into per-line token slices.
// Handles tokens that span multiple lines by splitting them at newline
// boundaries.
func splitTokensByLine(tokens []tmtheme.Token) [][]tmtheme.Token {
	if len(tokens) == 0 {
		return nil
	}

	var result [][]tmtheme.Token
	var currentLine []tmtheme.Token

	for _, tok := range tokens {
		if !strings.Contains(tok.Text, "\n") {
			currentLine = append(currentLine, tok)
			continue
		}

		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				currentLine = append(currentLine, tmtheme.Token{
					Text:   part,
					Scopes: tok.Scopes,
				})
			}
			// Not the last part means we hit a newline - finalize the line
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}

	return result
}
