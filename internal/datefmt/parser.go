package datefmt

import (
	"fmt"
	"regexp"
	"time"

	"github.com/araddon/dateparse"

	"github.com/julianstephens/datefmt/internal/constants"
)

// Day-first and month-first input layouts. Day and month may be one or two digits.
var (
	dayFirstLayouts   = []string{"2/1/2006", "2-1-2006"}
	monthFirstLayouts = []string{"1/2/2006", "1-2-2006"}

	// dateLayouts is the fixed try order used by ParseDate.
	dateLayouts = append(append([]string{}, dayFirstLayouts...), monthFirstLayouts...)
)

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ParseDate parses user input in one of d/m/Y, d-m-Y, m/d/Y, m-d-Y, tried in
// that order. The display format is not consulted, so 03/04/2024 is always
// read as 3 April.
func (f *Formatter) ParseDate(input string) (time.Time, error) {
	return parseFirst(input, dateLayouts)
}

// ParseDateDisplayFirst is ParseDate with the layouts of the configured
// display format's family (month-first or day-first) tried first.
func (f *Formatter) ParseDateDisplayFirst(input string) (time.Time, error) {
	return parseFirst(input, f.displayOrderLayouts())
}

// ParseDateLenient tries ParseDateDisplayFirst and then falls back to
// dateparse, which recognises most common written forms ("March 7, 2024",
// "2024/03/07"). Any time of day in the input is dropped.
func (f *Formatter) ParseDateLenient(input string) (time.Time, error) {
	if t, err := f.ParseDateDisplayFirst(input); err == nil {
		return t, nil
	}

	t, err := dateparse.ParseAny(input, dateparse.PreferMonthFirst(MonthFirst(f.cfg.DisplayFormat)))
	if err != nil {
		return time.Time{}, &ParseError{Input: input, Err: err}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
}

// ParseDateTime does not accept any input yet; it only reports whether the
// configured display format is known.
// TODO: accept "<display date>, HH:MM", the output of DisplayDateTime.
func (f *Formatter) ParseDateTime(input string) (time.Time, error) {
	if !IsDisplayFormat(f.cfg.DisplayFormat) {
		return time.Time{}, &ParseError{Input: input, Err: fmt.Errorf("%w: %q", ErrUnknownDisplayFormat, f.cfg.DisplayFormat)}
	}
	return time.Time{}, &ParseError{Input: input, Err: fmt.Errorf("%w for %s", ErrDateTimeUnsupported, f.cfg.DisplayFormat)}
}

// ParseTime parses a 24-hour H:MM or HH:MM time. The result is on the zero date in UTC.
func (f *Formatter) ParseTime(input string) (time.Time, error) {
	if !timePattern.MatchString(input) {
		return time.Time{}, &ParseError{Input: input, Layouts: []string{constants.TimeFormat}, Err: errNoPatternMatch}
	}

	t, err := time.Parse(constants.TimeFormat, input)
	if err != nil {
		return time.Time{}, &ParseError{Input: input, Layouts: []string{constants.TimeFormat}, Err: err}
	}
	return t, nil
}

func (f *Formatter) displayOrderLayouts() []string {
	if MonthFirst(f.cfg.DisplayFormat) {
		return append(append([]string{}, monthFirstLayouts...), dayFirstLayouts...)
	}
	return dateLayouts
}

func parseFirst(input string, layouts []string) (time.Time, error) {
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, input)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, &ParseError{Input: input, Layouts: layouts, Err: lastErr}
}
