package enum

// Toggle returns the opposite theme (dark↔light). Unknown values default to dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether the theme is the dark one.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Valid reports whether t is one of the declared themes (the zero value is not).
func (t Theme) Valid() bool {
	_, ok := themeNameToValue[t.name]
	return ok
}
