package tmtheme

import (
	"regexp"
	"strings"
)

// ParsedThemeRule is one normalized theme rule: a single scope name, the
// required ancestor scopes (immediate parent first), the declaration index
// of the raw entry it came from, and the styles the entry specified.
type ParsedThemeRule struct {
	Scope        string
	ParentScopes []string
	Index        int
	FontStyle    FontStyle
	Foreground   string
	Background   string
}

// Rgb(a) hex in the 3, 4, 6 and 8 digit forms accepted by theme files.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// IsValidHexColor reports whether s is a #-prefixed 3/4/6/8-digit hex color.
func IsValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// ParseFontStyle converts a space-separated keyword string into a bitmask.
// A nil pointer means the field was absent and returns FontStyleNotSet; an
// empty string means "explicitly no style" and returns FontStyleNone.
// Unknown keywords are ignored.
func ParseFontStyle(s *string) FontStyle {
	if s == nil {
		return FontStyleNotSet
	}
	style := FontStyleNone
	for _, segment := range strings.Split(*s, " ") {
		switch segment {
		case "italic":
			style |= FontStyleItalic
		case "bold":
			style |= FontStyleBold
		case "underline":
			style |= FontStyleUnderline
		case "strikethrough":
			style |= FontStyleStrikethrough
		}
	}
	return style
}

// selectors expands a raw scope field into individual selector strings.
// The single-string form is split on commas after trimming leading and
// trailing commas; the list form is used as-is. An absent scope degenerates
// to the empty selector, which matches everything at lowest specificity.
func selectors(scope ScopeField) []string {
	if scope.List {
		return scope.Selectors
	}
	raw := strings.Trim(scope.Raw, ",")
	return strings.Split(raw, ",")
}

// ParseTheme flattens a raw theme into one ParsedThemeRule per
// (entry, selector) pair. Entries without settings are skipped and do not
// consume a declaration index. Invalid colors are treated as absent.
func ParseTheme(source *RawTheme) []ParsedThemeRule {
	if source == nil || source.Settings == nil {
		return nil
	}

	var result []ParsedThemeRule
	index := -1
	for _, entry := range source.Settings {
		if entry.Settings == nil {
			continue
		}
		index++

		fontStyle := ParseFontStyle(entry.Settings.FontStyle)

		var foreground, background string
		if fg := entry.Settings.Foreground; fg != nil && IsValidHexColor(*fg) {
			foreground = *fg
		}
		if bg := entry.Settings.Background; bg != nil && IsValidHexColor(*bg) {
			background = *bg
		}

		for _, selector := range selectors(entry.Scope) {
			segments := strings.Split(strings.TrimSpace(selector), " ")

			scope := segments[len(segments)-1]
			var parentScopes []string
			if len(segments) > 1 {
				parentScopes = make([]string, 0, len(segments)-1)
				for i := len(segments) - 2; i >= 0; i-- {
					parentScopes = append(parentScopes, segments[i])
				}
			}

			result = append(result, ParsedThemeRule{
				Scope:        scope,
				ParentScopes: parentScopes,
				Index:        index,
				FontStyle:    fontStyle,
				Foreground:   foreground,
				Background:   background,
			})
		}
	}

	return result
}

// strArrCmp orders parent-scope lists: nil sorts first, then shorter lists,
// then element-wise byte comparison at equal length.
func strArrCmp(a, b []string) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	for i := range a {
		if r := strings.Compare(a[i], b[i]); r != 0 {
			return r
		}
	}
	return 0
}

// compareParsedThemeRules is the resolution order for parsed rules: scope
// name, then parent-scope list, then declaration index so later declarations
// win when merged into the trie.
func compareParsedThemeRules(a, b ParsedThemeRule) int {
	if r := strings.Compare(a.Scope, b.Scope); r != 0 {
		return r
	}
	if r := strArrCmp(a.ParentScopes, b.ParentScopes); r != 0 {
		return r
	}
	return a.Index - b.Index
}
