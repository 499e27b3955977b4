package tmtheme

import "strings"

// ThemeTrieElementRule is a style rule stored in the trie: the depth of the
// scope-name path it was inserted at, an optional ancestor-scope constraint,
// and the style fields (zero color ids and FontStyleNotSet mean unset).
type ThemeTrieElementRule struct {
	ScopeDepth   int
	ParentScopes []string
	FontStyle    FontStyle
	ForegroundID int
	BackgroundID int
}

// Clone returns a copy sharing the parent-scope slice, which is never
// mutated after parsing.
func (r ThemeTrieElementRule) Clone() ThemeTrieElementRule {
	return r
}

func cloneRules(rules []ThemeTrieElementRule) []ThemeTrieElementRule {
	out := make([]ThemeTrieElementRule, len(rules))
	copy(out, rules)
	return out
}

// acceptOverwrite merges a more recently inserted rule's fields in place.
// Only fields the incoming rule actually specifies are overridden.
func (r *ThemeTrieElementRule) acceptOverwrite(scopeDepth int, fontStyle FontStyle, foregroundID, backgroundID int) {
	if r.ScopeDepth <= scopeDepth {
		r.ScopeDepth = scopeDepth
	}
	if fontStyle != FontStyleNotSet {
		r.FontStyle = fontStyle
	}
	if foregroundID != 0 {
		r.ForegroundID = foregroundID
	}
	if backgroundID != 0 {
		r.BackgroundID = backgroundID
	}
}

// ThemeTrieElement is a trie node keyed by dot-separated scope-name
// segments. Each node carries the best unqualified rule for its path plus
// the rules constrained by ancestor scopes, most specific first.
type ThemeTrieElement struct {
	mainRule              ThemeTrieElementRule
	rulesWithParentScopes []ThemeTrieElementRule
	children              map[string]*ThemeTrieElement
}

// NewThemeTrieElement creates a trie node seeded with the given rules.
func NewThemeTrieElement(mainRule ThemeTrieElementRule, rulesWithParentScopes []ThemeTrieElementRule) *ThemeTrieElement {
	return &ThemeTrieElement{
		mainRule:              mainRule,
		rulesWithParentScopes: rulesWithParentScopes,
		children:              make(map[string]*ThemeTrieElement),
	}
}

// splitHead splits scope at the first dot into head segment and remainder.
func splitHead(scope string) (head, tail string) {
	if i := strings.IndexByte(scope, '.'); i >= 0 {
		return scope[:i], scope[i+1:]
	}
	return scope, ""
}

// Insert adds a rule for scope (relative to this node) at the given depth.
// Descending past a node clones that node's rules into newly created
// children so longer scope names inherit their ancestors' styles.
func (e *ThemeTrieElement) Insert(scopeDepth int, scope string, parentScopes []string, fontStyle FontStyle, foregroundID, backgroundID int) {
	if scope == "" {
		e.insertHere(scopeDepth, parentScopes, fontStyle, foregroundID, backgroundID)
		return
	}

	head, tail := splitHead(scope)
	child, ok := e.children[head]
	if !ok {
		child = NewThemeTrieElement(e.mainRule.Clone(), cloneRules(e.rulesWithParentScopes))
		e.children[head] = child
	}
	child.Insert(scopeDepth+1, tail, parentScopes, fontStyle, foregroundID, backgroundID)
}

func (e *ThemeTrieElement) insertHere(scopeDepth int, parentScopes []string, fontStyle FontStyle, foregroundID, backgroundID int) {
	if len(parentScopes) == 0 {
		e.mainRule.acceptOverwrite(scopeDepth, fontStyle, foregroundID, backgroundID)
		// Children cloned their state before this insert arrived; pass the
		// style down as an inherited default without clobbering anything a
		// deeper insert already made more specific.
		for _, child := range e.children {
			child.mergeDefault(scopeDepth, fontStyle, foregroundID, backgroundID)
		}
		return
	}

	// A repeated ancestor constraint merges instead of stacking up.
	for i := range e.rulesWithParentScopes {
		if strArrCmp(e.rulesWithParentScopes[i].ParentScopes, parentScopes) == 0 {
			e.rulesWithParentScopes[i].acceptOverwrite(scopeDepth, fontStyle, foregroundID, backgroundID)
			return
		}
	}

	// Inherit the node's defaults for anything the rule leaves unset.
	if fontStyle == FontStyleNotSet {
		fontStyle = e.mainRule.FontStyle
	}
	if foregroundID == 0 {
		foregroundID = e.mainRule.ForegroundID
	}
	if backgroundID == 0 {
		backgroundID = e.mainRule.BackgroundID
	}

	// Prepend so rules inserted at deeper levels are tried first.
	rule := ThemeTrieElementRule{
		ScopeDepth:   scopeDepth,
		ParentScopes: parentScopes,
		FontStyle:    fontStyle,
		ForegroundID: foregroundID,
		BackgroundID: backgroundID,
	}
	e.rulesWithParentScopes = append([]ThemeTrieElementRule{rule}, e.rulesWithParentScopes...)
}

// mergeDefault applies an ancestor's unqualified style to this subtree,
// skipping rules a deeper insert already made more specific.
func (e *ThemeTrieElement) mergeDefault(scopeDepth int, fontStyle FontStyle, foregroundID, backgroundID int) {
	if e.mainRule.ScopeDepth <= scopeDepth {
		e.mainRule.acceptOverwrite(scopeDepth, fontStyle, foregroundID, backgroundID)
	}
	for _, child := range e.children {
		child.mergeDefault(scopeDepth, fontStyle, foregroundID, backgroundID)
	}
}

// Match walks the trie along scope's dot-separated segments as far as nodes
// exist and returns the candidate rules at the deepest node reached:
// ancestor-qualified rules first (most specific leading), then the
// unqualified main rule as the fallback.
func (e *ThemeTrieElement) Match(scope string) []ThemeTrieElementRule {
	if scope != "" {
		head, tail := splitHead(scope)
		if child, ok := e.children[head]; ok {
			return child.Match(tail)
		}
	}

	result := make([]ThemeTrieElementRule, 0, len(e.rulesWithParentScopes)+1)
	result = append(result, e.rulesWithParentScopes...)
	result = append(result, e.mainRule)
	return result
}
