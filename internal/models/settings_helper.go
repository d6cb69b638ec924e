package models

import (
	"github.com/julianstephens/datefmt/internal/constants"
	"github.com/julianstephens/datefmt/internal/datefmt"
)

// MapToSettings converts key/value rows to a Settings struct. Unknown keys are ignored.
func MapToSettings(data map[string]string) Settings {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingDateFormat:
			settings.DateFormat = constants.DisplayFormat(value)
		case constants.SettingLocale:
			settings.Locale = value
		}
	}
	return settings
}

// SettingsToMap converts a Settings struct to key/value rows.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingDateFormat: string(settings.DateFormat),
		constants.SettingLocale:     settings.Locale,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.DateFormat == "" {
		settings.DateFormat = constants.DefaultDateFormat
	}
	if settings.Locale == "" {
		settings.Locale = constants.DefaultLocale
	}
}

// DefaultSettings returns the settings written by a fresh init.
func DefaultSettings() Settings {
	settings := Settings{}
	ApplyDefaultSettings(&settings)
	return settings
}

// Config returns the formatter configuration for these settings.
func (s Settings) Config() datefmt.Config {
	return datefmt.Config{
		DisplayFormat: s.DateFormat,
		Locale:        s.Locale,
	}
}

// Validate checks the settings the same way the formatter configuration is checked.
func (s Settings) Validate() error {
	return s.Config().Validate()
}
