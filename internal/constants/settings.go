package constants

const (
	SettingDateFormat = "date_format"
	SettingLocale     = "locale"

	DefaultDateFormat = DisplayMonthDaySlash // US date format
	DefaultLocale     = "en-US"              // US English
)
