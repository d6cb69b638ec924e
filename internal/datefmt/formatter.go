package datefmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leekchan/timeutil"

	"github.com/julianstephens/datefmt/internal/constants"
	"github.com/julianstephens/datefmt/internal/logger"
)

// strftimeReplacer turns a display template into a strftime pattern.
var strftimeReplacer = strings.NewReplacer(
	"%", "%%",
	constants.PlaceholderMonth, "%m",
	constants.PlaceholderDay, "%d",
	constants.PlaceholderYear, "%Y",
)

const clockPattern = "%H:%M"

// Formatter converts between storage and display representations.
// It is immutable once built and safe for concurrent use.
type Formatter struct {
	cfg         Config
	datePattern string
}

// New builds a Formatter from cfg, filling in the default format and locale.
func New(cfg Config) *Formatter {
	cfg.EnsureDefaultFormat()
	cfg.EnsureDefaultLocale()
	return &Formatter{
		cfg:         cfg,
		datePattern: strftimeReplacer.Replace(string(cfg.DisplayFormat)),
	}
}

// Config returns the configuration the formatter was built with, defaults applied.
func (f *Formatter) Config() Config {
	return f.cfg
}

// DisplayDate renders a stored yyyy-mm-dd date in the display format.
func (f *Formatter) DisplayDate(stored string) (string, error) {
	t, err := time.Parse(constants.DateFormat, stored)
	if err != nil {
		return "", &ParseError{Input: stored, Layouts: []string{constants.DateFormat}, Err: err}
	}

	// All placeholders are substituted in one pass so a substituted value is never re-matched
	r := strings.NewReplacer(
		constants.PlaceholderMonth, t.Format("01"),
		constants.PlaceholderDay, t.Format("02"),
		constants.PlaceholderYear, t.Format("2006"),
	)
	return r.Replace(string(f.cfg.DisplayFormat)), nil
}

// DisplayDateTime renders a stored yyyy-mm-dd HH:ii:ss date-time as
// "<display date>, HH:MM". Seconds are dropped.
func (f *Formatter) DisplayDateTime(stored string) (string, error) {
	t, err := time.Parse(constants.DateTimeFormat, stored)
	if err != nil {
		return "", &ParseError{Input: stored, Layouts: []string{constants.DateTimeFormat}, Err: err}
	}

	date := timeutil.Strftime(&t, f.datePattern)
	clock := timeutil.Strftime(&t, clockPattern)
	return date + constants.DateTimeSeparator + clock, nil
}

// DisplayTime renders a stored HH:ii time. Hours above 12 are returned as
// zero-padded 24-hour values; hours 0-12 go through a 12-hour clock with no
// AM/PM marker, so 00:30 becomes 12:30. Fields after the minutes are ignored.
// A value with no minute field fails with ErrTooFewFields.
func (f *Formatter) DisplayTime(stored string) (string, error) {
	parts := strings.Split(stored, ":")
	if len(parts) < 2 {
		return "", &ParseError{Input: stored, Err: ErrTooFewFields}
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", &ParseError{Input: stored, Err: err}
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", &ParseError{Input: stored, Err: err}
	}

	if hours > 12 {
		return fmt.Sprintf("%02d:%02d", hours, minutes), nil
	}

	if hours < 0 || minutes < 0 || minutes > 59 {
		return "", &ParseError{Input: stored, Err: errOffClock}
	}
	clock := time.Date(0, time.January, 1, hours, minutes, 0, 0, time.UTC)
	return clock.Format(constants.TwelveHourFormat), nil
}

// FormatDate is DisplayDate that returns the input unchanged on failure.
func (f *Formatter) FormatDate(stored string) string {
	out, err := f.DisplayDate(stored)
	if err != nil {
		logger.Debug("Returning stored date unchanged", "input", stored, "error", err)
		return stored
	}
	return out
}

// FormatDateTime is DisplayDateTime that returns the input unchanged on failure.
func (f *Formatter) FormatDateTime(stored string) string {
	out, err := f.DisplayDateTime(stored)
	if err != nil {
		logger.Debug("Returning stored date-time unchanged", "input", stored, "error", err)
		return stored
	}
	return out
}

// FormatTime is DisplayTime with the historical fallbacks: an empty string
// when the minute field is missing, the input unchanged for anything else.
func (f *Formatter) FormatTime(stored string) string {
	out, err := f.DisplayTime(stored)
	switch {
	case errors.Is(err, ErrTooFewFields):
		return ""
	case err != nil:
		logger.Debug("Returning stored time unchanged", "input", stored, "error", err)
		return stored
	}
	return out
}
