package datefmt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParseFailure matches every error returned by the format and parse functions
	ErrParseFailure = errors.New("parse failure")
	// ErrTooFewFields is returned when a stored time has no minute field
	ErrTooFewFields = errors.New("expected hour and minute fields")
	// ErrDateTimeUnsupported is returned by ParseDateTime for every input
	ErrDateTimeUnsupported = errors.New("date-time input is not supported")
	// ErrUnknownDisplayFormat is returned for a display format outside the supported set
	ErrUnknownDisplayFormat = errors.New("unknown display format")

	errNoPatternMatch = errors.New("input does not match pattern")
	errOffClock       = errors.New("value cannot be shown on a 12-hour clock")
)

// ParseError describes input that did not match any of the expected layouts.
type ParseError struct {
	Input   string
	Layouts []string
	Err     error
}

func (e *ParseError) Error() string {
	if len(e.Layouts) == 0 {
		return fmt.Sprintf("cannot parse %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as %s: %v", e.Input, strings.Join(e.Layouts, " or "), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports every ParseError as an ErrParseFailure.
func (e *ParseError) Is(target error) bool {
	return target == ErrParseFailure
}
