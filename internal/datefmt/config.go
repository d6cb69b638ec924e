package datefmt

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/julianstephens/datefmt/internal/constants"
)

// Config holds the display settings a Formatter is built from.
type Config struct {
	DisplayFormat constants.DisplayFormat
	// Locale is carried and validated but no formatting path reads it yet.
	Locale string
}

// DefaultConfig returns the US defaults (mm/dd/yyyy, en-US).
func DefaultConfig() Config {
	cfg := Config{}
	cfg.EnsureDefaultFormat()
	cfg.EnsureDefaultLocale()
	return cfg
}

// EnsureDefaultFormat sets the display format to mm/dd/yyyy if it is unset.
func (c *Config) EnsureDefaultFormat() {
	if c.DisplayFormat == "" {
		c.DisplayFormat = constants.DefaultDateFormat
	}
}

// EnsureDefaultLocale sets the locale to en-US if it is unset.
func (c *Config) EnsureDefaultLocale() {
	if c.Locale == "" {
		c.Locale = constants.DefaultLocale
	}
}

// Validate checks that the display format is one of the supported formats
// and that the locale is a well-formed BCP 47 tag.
func (c Config) Validate() error {
	if !IsDisplayFormat(c.DisplayFormat) {
		return fmt.Errorf("%w: %q", ErrUnknownDisplayFormat, c.DisplayFormat)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return nil
}

// IsDisplayFormat reports whether f is one of the supported display formats.
func IsDisplayFormat(f constants.DisplayFormat) bool {
	for _, known := range constants.DisplayFormats {
		if f == known {
			return true
		}
	}
	return false
}

// MonthFirst reports whether the format puts the month before the day.
func MonthFirst(f constants.DisplayFormat) bool {
	return strings.Index(string(f), constants.PlaceholderMonth) < strings.Index(string(f), constants.PlaceholderDay)
}
