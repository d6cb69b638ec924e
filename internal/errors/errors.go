package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/datefmt/internal/datefmt"
	"github.com/julianstephens/datefmt/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a follow-up line for errors the user can fix by changing input, or "".
func Hint(err error) string {
	switch {
	case stderrors.Is(err, datefmt.ErrUnknownDisplayFormat):
		return "Supported display formats: mm/dd/yyyy, dd/mm/yyyy, mm-dd-yyyy, dd-mm-yyyy"
	case stderrors.Is(err, datefmt.ErrDateTimeUnsupported):
		return "Parse the date and time separately with 'datefmt parse date' and 'datefmt parse time'"
	case stderrors.Is(err, datefmt.ErrParseFailure):
		return "Stored values use yyyy-mm-dd, yyyy-mm-dd HH:ii:ss and HH:ii"
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	if hint := Hint(err); hint != "" {
		fmt.Fprintf(os.Stderr, "       %s\n", hint)
	}
	os.Exit(1)
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	Fatal(fmt.Errorf(format, args...))
}
