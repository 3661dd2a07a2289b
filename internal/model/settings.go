package model

// Settings holds user preferences from the settings screen.
type Settings struct {
	DarkTheme bool
	Russian   bool
}

// DefaultSettings returns settings with default values.
func DefaultSettings() Settings {
	return Settings{}
}

// Language returns the BCP 47 tag the UI should be localized to.
func (s Settings) Language() string {
	if s.Russian {
		return "ru"
	}
	return "en"
}

// ThemeName returns the name of the theme matching these settings.
func (s Settings) ThemeName() string {
	if s.DarkTheme {
		return "dark"
	}
	return "light"
}
