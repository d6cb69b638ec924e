package constants

// DisplayFormat is a locale-facing date template built from the placeholders mm, dd and yyyy
type DisplayFormat string

const (
	// DateFormat is the storage format for dates (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is the storage format for date-times (YYYY-MM-DD HH:MM:SS, 24-hour clock)
	DateTimeFormat = "2006-01-02 15:04:05"

	// TimeFormat is the storage format for times of day (HH:MM)
	TimeFormat = "15:04"

	// TwelveHourFormat renders a time of day on a 12-hour clock without an AM/PM marker
	TwelveHourFormat = "03:04"

	// Display format placeholders
	PlaceholderMonth = "mm"
	PlaceholderDay   = "dd"
	PlaceholderYear  = "yyyy"

	DisplayMonthDaySlash DisplayFormat = "mm/dd/yyyy"
	DisplayDayMonthSlash DisplayFormat = "dd/mm/yyyy"
	DisplayMonthDayDash  DisplayFormat = "mm-dd-yyyy"
	DisplayDayMonthDash  DisplayFormat = "dd-mm-yyyy"

	// DateTimeSeparator joins the date and time halves of a displayed date-time
	DateTimeSeparator = ", "
)

// DisplayFormats lists every supported display format in presentation order.
var DisplayFormats = []DisplayFormat{
	DisplayMonthDaySlash,
	DisplayDayMonthSlash,
	DisplayMonthDayDash,
	DisplayDayMonthDash,
}
