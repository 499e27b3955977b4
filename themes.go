package tmtheme

func str(s string) *string { return &s }

// DefaultRawTheme returns the built-in dark theme, used when no theme file
// is supplied. Colors follow the Catppuccin Mocha palette.
func DefaultRawTheme() *RawTheme {
	return &RawTheme{
		Name: "default-dark",
		Settings: []RawThemeSetting{
			{
				Settings: &RawSetting{
					Foreground: str("#cdd6f4"),
					Background: str("#1e1e2e"),
				},
			},
			{
				Scope:    ScopeField{Raw: "comment, punctuation.definition.comment"},
				Settings: &RawSetting{Foreground: str("#6c7086"), FontStyle: str("italic")},
			},
			{
				Scope:    ScopeField{Raw: "string, string.quoted"},
				Settings: &RawSetting{Foreground: str("#a6e3a1")},
			},
			{
				Scope:    ScopeField{Raw: "constant.numeric, constant.language"},
				Settings: &RawSetting{Foreground: str("#fab387")},
			},
			{
				Scope:    ScopeField{Raw: "keyword, keyword.control, storage.type, storage.modifier"},
				Settings: &RawSetting{Foreground: str("#cba6f7"), FontStyle: str("bold")},
			},
			{
				Scope:    ScopeField{Raw: "keyword.operator"},
				Settings: &RawSetting{Foreground: str("#94e2d5"), FontStyle: str("")},
			},
			{
				Scope:    ScopeField{Raw: "entity.name.function, support.function"},
				Settings: &RawSetting{Foreground: str("#89b4fa")},
			},
			{
				Scope:    ScopeField{Raw: "entity.name.type, support.type, entity.name.class"},
				Settings: &RawSetting{Foreground: str("#f9e2af")},
			},
			{
				Scope:    ScopeField{Raw: "variable, variable.other"},
				Settings: &RawSetting{Foreground: str("#cdd6f4")},
			},
			{
				Scope:    ScopeField{Raw: "invalid, invalid.illegal"},
				Settings: &RawSetting{Foreground: str("#f38ba8")},
			},		},
	}
}
