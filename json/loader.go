// Package json loads raw theme definitions from JSON theme files.
package json

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/tmtheme"
)

// Compile-time interface verification.
var _ tmtheme.Loader = (*Loader)(nil)

// Loader reads VS Code and tmTheme-style JSON theme files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileTheme is the on-disk shape. VS Code themes put token rules under
// "tokenColors"; converted tmTheme files put them under "settings". Unknown
// fields are ignored.
type fileTheme struct {
	Name        string                    `json:"name"`
	Settings    []tmtheme.RawThemeSetting `json:"settings"`
	TokenColors []tmtheme.RawThemeSetting `json:"tokenColors"`
	Colors      map[string]string         `json:"colors"`
}

// Editor color keys that map onto the theme-wide default rule.
const (
	editorForegroundKey = "editor.foreground"
	editorBackgroundKey = "editor.background"
)

// Load reads a theme file and returns its raw settings. When both
// "settings" and "tokenColors" are present the settings entries come first,
// preserving their lower declaration indices.
func (l *Loader) Load(path string) (*tmtheme.RawTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ft fileTheme
	if err := json.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}

	raw := &tmtheme.RawTheme{Name: ft.Name}

	// VS Code themes carry the global defaults in the "colors" table rather
	// than an empty-scope entry; synthesize one so resolution sees them.
	if fg, bg := ft.Colors[editorForegroundKey], ft.Colors[editorBackgroundKey]; fg != "" || bg != "" {
		defaults := &tmtheme.RawSetting{}
		if fg != "" {
			defaults.Foreground = &fg
		}
		if bg != "" {
			defaults.Background = &bg
		}
		raw.Settings = append(raw.Settings, tmtheme.RawThemeSetting{Settings: defaults})
	}

	raw.Settings = append(raw.Settings, ft.Settings...)
	raw.Settings = append(raw.Settings, ft.TokenColors...)
	return raw, nil
}
