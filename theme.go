package tmtheme

import (
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Theme resolves scope stacks to style attributes for one parsed theme.
// Construction is single-threaded; once built, the trie and color map are
// immutable and Match is safe for concurrent use.
type Theme struct {
	colorMap *ColorMap
	defaults StyleAttributes
	root     *ThemeTrieElement

	mu    sync.RWMutex
	cache map[string][]ThemeTrieElementRule
	group singleflight.Group
}

// CreateFromRawTheme parses and resolves a raw theme. An optional color
// palette pre-seeds the low-numbered color ids.
func CreateFromRawTheme(source *RawTheme, colorMap []string) *Theme {
	return CreateFromParsedTheme(ParseTheme(source), colorMap)
}

// CreateFromParsedTheme resolves already-parsed rules into a Theme.
func CreateFromParsedTheme(source []ParsedThemeRule, colorMap []string) *Theme {
	return resolveParsedThemeRules(source, colorMap)
}

// resolveParsedThemeRules sorts the rules, folds leading empty-scope rules
// into the theme defaults, and inserts the rest into the trie.
func resolveParsedThemeRules(parsedThemeRules []ParsedThemeRule, initialColors []string) *Theme {
	rules := make([]ParsedThemeRule, len(parsedThemeRules))
	copy(rules, parsedThemeRules)
	sort.SliceStable(rules, func(i, j int) bool {
		return compareParsedThemeRules(rules[i], rules[j]) < 0
	})

	defaultFontStyle := FontStyleNone
	defaultForeground := "#000000"
	defaultBackground := "#ffffff"
	for len(rules) > 0 && rules[0].Scope == "" {
		incoming := rules[0]
		rules = rules[1:]
		if incoming.FontStyle != FontStyleNotSet {
			defaultFontStyle = incoming.FontStyle
		}
		if incoming.Foreground != "" {
			defaultForeground = incoming.Foreground
		}
		if incoming.Background != "" {
			defaultBackground = incoming.Background
		}
	}

	colorMap := NewColorMap(initialColors)
	defaults := StyleAttributes{
		FontStyle:    defaultFontStyle,
		ForegroundID: colorMap.GetID(defaultForeground),
		BackgroundID: colorMap.GetID(defaultBackground),
	}

	root := NewThemeTrieElement(ThemeTrieElementRule{FontStyle: FontStyleNotSet}, nil)
	for _, rule := range rules {
		root.Insert(0, rule.Scope, rule.ParentScopes,
			rule.FontStyle, colorMap.GetID(rule.Foreground), colorMap.GetID(rule.Background))
	}

	return &Theme{
		colorMap: colorMap,
		defaults: defaults,
		root:     root,
		cache:    make(map[string][]ThemeTrieElementRule),
	}
}

// GetDefaults returns the sheet-wide default style, assembled from the
// theme's empty-scope rules.
func (t *Theme) GetDefaults() StyleAttributes {
	return t.defaults
}

// GetColor returns the hex color for a color id, or an empty string for 0
// and unknown ids.
func (t *Theme) GetColor(id int) string {
	return t.colorMap.GetColor(id)
}

// GetColorMap returns the interned colors ordered by id, starting at id 1.
func (t *Theme) GetColorMap() []string {
	return t.colorMap.Colors()
}

// Match resolves a scope stack to the most specific matching style. A nil
// stack yields the theme defaults. When no rule applies, ok is false and the
// caller falls back to its own default rather than the theme's.
func (t *Theme) Match(scopePath *ScopeStack) (_ StyleAttributes, ok bool) {
	if scopePath == nil {
		return t.defaults, true
	}

	candidates := t.candidateRules(scopePath.ScopeName)
	for _, rule := range candidates {
		if scopePathMatchesParentScopes(scopePath.Parent, rule.ParentScopes) {
			return StyleAttributes{
				FontStyle:    rule.FontStyle,
				ForegroundID: rule.ForegroundID,
				BackgroundID: rule.BackgroundID,
			}, true
		}
	}
	return StyleAttributes{}, false
}

// candidateRules returns the trie's candidate list for a leaf scope name,
// memoized per name. Recomputing on a racing miss is harmless; singleflight
// merely collapses concurrent lookups of the same name.
func (t *Theme) candidateRules(scopeName string) []ThemeTrieElementRule {
	t.mu.RLock()
	rules, ok := t.cache[scopeName]
	t.mu.RUnlock()
	if ok {
		return rules
	}

	v, _, _ := t.group.Do(scopeName, func() (any, error) {
		matched := t.root.Match(scopeName)
		t.mu.Lock()
		t.cache[scopeName] = matched
		t.mu.Unlock()
		return matched, nil
	})
	return v.([]ThemeTrieElementRule)
}

// scopePathMatchesParentScopes verifies an ancestor-scope constraint against
// the chain above the leaf. Patterns need not match contiguous ancestors;
// scopes between matches are skipped.
func scopePathMatchesParentScopes(scopePath *ScopeStack, parentScopeNames []string) bool {
	if len(parentScopeNames) == 0 {
		return true
	}

	index := 0
	scopePattern := parentScopeNames[index]
	for scopePath != nil {
		if matchesScope(scopePath.ScopeName, scopePattern) {
			index++
			if index == len(parentScopeNames) {
				return true
			}
			scopePattern = parentScopeNames[index]
		}
		scopePath = scopePath.Parent
	}
	return false
}

// matchesScope reports whether pattern equals scopeName or is a
// dot-delimited prefix of it.
func matchesScope(scopeName, pattern string) bool {
	if pattern == scopeName {
		return true
	}
	return len(scopeName) > len(pattern) &&
		scopeName[:len(pattern)] == pattern &&
		scopeName[len(pattern)] == '.'
}
