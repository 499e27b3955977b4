package tmtheme

import (
	"fmt"
	"strings"
)

// ValidationReason identifies why a raw theme entry is suspect.
type ValidationReason string

// Validation warning reasons.
const (
	ErrInvalidColor     ValidationReason = "invalid_color"
	ErrUnknownFontStyle ValidationReason = "unknown_font_style"
	ErrEmptySelector    ValidationReason = "empty_selector"
	ErrMissingSettings  ValidationReason = "missing_settings"
)

// ValidationError describes a single problem found in a raw theme. These are
// diagnostics for tooling; resolution itself stays permissive and treats the
// offending values as absent.
type ValidationError struct {
	Entry  int              // Index of the raw settings entry
	Field  string           // Offending field ("foreground", "fontStyle", ...)
	Value  string           // The value as written in the theme
	Reason ValidationReason // Why this entry is suspect
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch e.Reason {
	case ErrInvalidColor:
		return fmt.Sprintf("entry %d: %s %q is not a valid hex color, treating as unset",
			e.Entry, e.Field, e.Value)
	case ErrUnknownFontStyle:
		return fmt.Sprintf("entry %d: unknown font style keyword %q, ignoring",
			e.Entry, e.Value)
	case ErrEmptySelector:
		return fmt.Sprintf("entry %d: empty scope selector matches everything at lowest specificity",
			e.Entry)
	case ErrMissingSettings:
		return fmt.Sprintf("entry %d: no settings object, entry is skipped", e.Entry)
	default:
		return fmt.Sprintf("entry %d: unknown problem in field %q", e.Entry, e.Field)
	}
}

// fontStyleKeywords are the values ParseFontStyle understands. The empty
// string is allowed: it means "explicitly no style".
var fontStyleKeywords = map[string]bool{
	"italic":        true,
	"bold":          true,
	"underline":     true,
	"strikethrough": true,
	"":              true,
}

// ValidateRawTheme reports problems that resolution would silently paper
// over. Returns nil for a clean theme.
func ValidateRawTheme(source *RawTheme) []ValidationError {
	if source == nil {
		return nil
	}

	var errs []ValidationError
	for i, entry := range source.Settings {
		if entry.Settings == nil {
			errs = append(errs, ValidationError{Entry: i, Reason: ErrMissingSettings})
			continue
		}

		if fg := entry.Settings.Foreground; fg != nil && !IsValidHexColor(*fg) {
			errs = append(errs, ValidationError{
				Entry: i, Field: "foreground", Value: *fg, Reason: ErrInvalidColor,
			})
		}
		if bg := entry.Settings.Background; bg != nil && !IsValidHexColor(*bg) {
			errs = append(errs, ValidationError{
				Entry: i, Field: "background", Value: *bg, Reason: ErrInvalidColor,
			})
		}

		if fs := entry.Settings.FontStyle; fs != nil {
			for _, segment := range strings.Split(*fs, " ") {
				if !fontStyleKeywords[segment] {
					errs = append(errs, ValidationError{
						Entry: i, Field: "fontStyle", Value: segment, Reason: ErrUnknownFontStyle,
					})
				}
			}
		}

		// An entry with a scope field but only blank selectors almost
		// certainly meant to target something.
		if entry.Scope.List || entry.Scope.Raw != "" {
			for _, selector := range selectors(entry.Scope) {
				if strings.TrimSpace(selector) == "" {
					errs = append(errs, ValidationError{Entry: i, Field: "scope", Reason: ErrEmptySelector})
				}
			}
		}
	}
	return errs
}
