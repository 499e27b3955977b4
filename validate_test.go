package tmtheme_test

import (
	"testing"

	"github.com/fwojciec/tmtheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRawTheme(t *testing.T) {
	t.Parallel()

	t.Run("clean themes produce no warnings", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, tmtheme.ValidateRawTheme(nil))
		assert.Nil(t, tmtheme.ValidateRawTheme(&tmtheme.RawTheme{}))
		assert.Nil(t, tmtheme.ValidateRawTheme(tmtheme.DefaultRawTheme()))
	})

	t.Run("flags invalid colors", func(t *testing.T) {
		t.Parallel()

		raw := &tmtheme.RawTheme{Settings: []tmtheme.RawThemeSetting{{
			Scope:    tmtheme.ScopeField{Raw: "string"},
			Settings: &tmtheme.RawSetting{Foreground: str("red"), Background: str("#12345")},
		}}}

		errs := tmtheme.ValidateRawTheme(raw)

		require.Len(t, errs, 2)
		assert.Equal(t, tmtheme.ErrInvalidColor, errs[0].Reason)
		assert.Equal(t, "foreground", errs[0].Field)
		assert.Equal(t, "red", errs[0].Value)
		assert.Contains(t, errs[0].Error(), "not a valid hex color")
		assert.Equal(t, "background", errs[1].Field)
	})

	t.Run("flags unknown font style keywords", func(t *testing.T) {
		t.Parallel()

		raw := &tmtheme.RawTheme{Settings: []tmtheme.RawThemeSetting{{
			Scope:    tmtheme.ScopeField{Raw: "comment"},
			Settings: &tmtheme.RawSetting{FontStyle: str("italic shiny")},
		}}}

		errs := tmtheme.ValidateRawTheme(raw)

		require.Len(t, errs, 1)
		assert.Equal(t, tmtheme.ErrUnknownFontStyle, errs[0].Reason)
		assert.Equal(t, "shiny", errs[0].Value)
	})

	t.Run("empty font style is explicitly allowed", func(t *testing.T) {
		t.Parallel()

		raw := &tmtheme.RawTheme{Settings: []tmtheme.RawThemeSetting{{
			Scope:    tmtheme.ScopeField{Raw: "keyword.operator"},
			Settings: &tmtheme.RawSetting{FontStyle: str("")},
		}}}

		assert.Nil(t, tmtheme.ValidateRawTheme(raw))
	})

	t.Run("flags entries without settings", func(t *testing.T) {
		t.Parallel()

		raw := &tmtheme.RawTheme{Settings: []tmtheme.RawThemeSetting{{
			Scope: tmtheme.ScopeField{Raw: "string"},
		}}}

		errs := tmtheme.ValidateRawTheme(raw)

		require.Len(t, errs, 1)
		assert.Equal(t, tmtheme.ErrMissingSettings, errs[0].Reason)
		assert.Equal(t, 0, errs[0].Entry)
	})

	t.Run("flags blank selectors in explicit lists", func(t *testing.T) {
		t.Parallel()

		raw := &tmtheme.RawTheme{Settings: []tmtheme.RawThemeSetting{{
			Scope:    tmtheme.ScopeField{Selectors: []string{"string", " "}, List: true},
			Settings: &tmtheme.RawSetting{Foreground: str("#ff0000")},
		}}}

		errs := tmtheme.ValidateRawTheme(raw)

		require.Len(t, errs, 1)
		assert.Equal(t, tmtheme.ErrEmptySelector, errs[0].Reason)
	})

	t.Run("absent scope is not a warning", func(t *testing.T) {
		t.Parallel()

		raw := &tmtheme.RawTheme{Settings: []tmtheme.RawThemeSetting{{
			Settings: &tmtheme.RawSetting{Foreground: str("#ff0000")},
		}}}

		assert.Nil(t, tmtheme.ValidateRawTheme(raw))
	})
}
