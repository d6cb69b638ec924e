package models

import "github.com/julianstephens/datefmt/internal/constants"

// Settings is the persisted form of the formatter configuration
type Settings struct {
	DateFormat constants.DisplayFormat `json:"date_format"` // one of constants.DisplayFormats
	Locale     string                  `json:"locale"`      // BCP 47 tag, e.g. "en-US"
}
