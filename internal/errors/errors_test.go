package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/julianstephens/datefmt/internal/datefmt"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("failed to load settings: %w", errors.New("settings not found")),
			expected: "Error: failed to load settings: settings not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("unknown display format %q", "yyyy/mm/dd")
	want := `Error: unknown display format "yyyy/mm/dd"`
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}

func TestHint(t *testing.T) {
	f := datefmt.New(datefmt.Config{})
	_, parseErr := f.ParseTime("25:00")
	_, dateTimeErr := f.ParseDateTime("03/07/2024, 14:30")
	formatErr := datefmt.Config{DisplayFormat: "yyyy", Locale: "en-US"}.Validate()

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "parse failure",
			err:      parseErr,
			contains: "yyyy-mm-dd",
		},
		{
			name:     "date-time stub",
			err:      dateTimeErr,
			contains: "datefmt parse time",
		},
		{
			name:     "unknown display format",
			err:      formatErr,
			contains: "dd-mm-yyyy",
		},
		{
			name:     "unrelated error",
			err:      errors.New("disk full"),
			contains: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hint(tt.err)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("Hint() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Hint() = %q, want to contain %q", got, tt.contains)
			}
		})
	}
}

// TestFatal tests the Fatal function using exec helper process
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(errors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

// TestFatal_NilError tests that Fatal does nothing when passed a nil error
func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal_NilError$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}

// TestFatalf tests the Fatalf function using exec helper process
func TestFatalf(t *testing.T) {
	if os.Getenv("GO_TEST_FATALF") == "1" {
		Fatalf("cannot open %s: %w", "datefmt.db", datefmt.ErrParseFailure)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatalf$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATALF=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatalf() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: cannot open datefmt.db: parse failure") {
			t.Errorf("Fatalf() stderr = %q, want formatted message", stderr.String())
		}
		if !strings.Contains(stderr.String(), "yyyy-mm-dd") {
			t.Errorf("Fatalf() stderr = %q, want hint", stderr.String())
		}
	} else {
		t.Errorf("Fatalf() did not exit with error: %v", err)
	}
}
