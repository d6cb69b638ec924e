package models

import (
	"testing"

	"github.com/julianstephens/datefmt/internal/constants"
)

func TestMapToSettings(t *testing.T) {
	got := MapToSettings(map[string]string{
		constants.SettingDateFormat: "dd-mm-yyyy",
		constants.SettingLocale:     "en-GB",
		"day_start":                 "08:00",
	})

	if got.DateFormat != constants.DisplayDayMonthDash {
		t.Errorf("DateFormat = %q, want %q", got.DateFormat, constants.DisplayDayMonthDash)
	}
	if got.Locale != "en-GB" {
		t.Errorf("Locale = %q, want en-GB", got.Locale)
	}
}

func TestSettingsToMap(t *testing.T) {
	m := SettingsToMap(Settings{DateFormat: constants.DisplayDayMonthSlash, Locale: "fr-FR"})

	if len(m) != 2 {
		t.Fatalf("SettingsToMap() returned %d keys, want 2", len(m))
	}
	if m[constants.SettingDateFormat] != "dd/mm/yyyy" {
		t.Errorf("date_format = %q, want dd/mm/yyyy", m[constants.SettingDateFormat])
	}
	if m[constants.SettingLocale] != "fr-FR" {
		t.Errorf("locale = %q, want fr-FR", m[constants.SettingLocale])
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			name: "empty",
			in:   Settings{},
			want: Settings{DateFormat: constants.DefaultDateFormat, Locale: constants.DefaultLocale},
		},
		{
			name: "format set",
			in:   Settings{DateFormat: constants.DisplayDayMonthDash},
			want: Settings{DateFormat: constants.DisplayDayMonthDash, Locale: constants.DefaultLocale},
		},
		{
			name: "both set",
			in:   Settings{DateFormat: constants.DisplayMonthDayDash, Locale: "de-DE"},
			want: Settings{DateFormat: constants.DisplayMonthDayDash, Locale: "de-DE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			ApplyDefaultSettings(&got)
			if got != tt.want {
				t.Errorf("ApplyDefaultSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettingsConfig(t *testing.T) {
	s := Settings{DateFormat: constants.DisplayDayMonthSlash, Locale: "en-GB"}
	cfg := s.Config()

	if cfg.DisplayFormat != s.DateFormat || cfg.Locale != s.Locale {
		t.Errorf("Config() = %+v, want fields from %+v", cfg, s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := (Settings{DateFormat: "yyyy", Locale: "en-US"}).Validate(); err == nil {
		t.Error("Validate() expected error for unknown format")
	}
}
