package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/datefmt/internal/constants"
	"github.com/julianstephens/datefmt/internal/datefmt"
)

// Kind is the storage shape a preview input was recognised as
type Kind int

const (
	KindUnknown Kind = iota
	KindDate
	KindDateTime
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindDateTime:
		return "date-time"
	case KindTime:
		return "time"
	default:
		return "unrecognised"
	}
}

// SaveFunc persists the chosen display format.
type SaveFunc func(constants.DisplayFormat) error

// Rendering is one row of the preview: a display format and the input shown in it.
type Rendering struct {
	Format constants.DisplayFormat
	Text   string
	Err    error
}

type Model struct {
	input    textinput.Model
	keys     KeyMap
	help     help.Model
	base     datefmt.Config
	stored   constants.DisplayFormat
	selected int
	save     SaveFunc
	status   string
	err      error
	quitting bool
}

// NewModel builds a preview seeded with value. cfg carries the stored settings;
// save may be nil for a read-only preview.
func NewModel(cfg datefmt.Config, value string, save SaveFunc) Model {
	cfg.EnsureDefaultFormat()
	cfg.EnsureDefaultLocale()

	ti := textinput.New()
	ti.Placeholder = "2024-03-07 14:30:00"
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.SetValue(value)
	ti.Focus()

	m := Model{
		input:  ti,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		base:   cfg,
		stored: cfg.DisplayFormat,
		save:   save,
	}
	for i, f := range constants.DisplayFormats {
		if f == cfg.DisplayFormat {
			m.selected = i
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Selected returns the display format under the cursor.
func (m Model) Selected() constants.DisplayFormat {
	return constants.DisplayFormats[m.selected]
}

// Stored returns the display format last saved.
func (m Model) Stored() constants.DisplayFormat {
	return m.stored
}

// Value returns the current input.
func (m Model) Value() string {
	return m.input.Value()
}

// Canonical resolves the input to its storage form. Stored forms are taken
// as-is; anything else goes through the lenient date parser.
func (m Model) Canonical() (string, Kind) {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return "", KindUnknown
	}

	if _, err := time.Parse(constants.DateTimeFormat, value); err == nil {
		return value, KindDateTime
	}
	if _, err := time.Parse(constants.DateFormat, value); err == nil {
		return value, KindDate
	}

	f := datefmt.New(m.base)
	if t, err := f.ParseTime(value); err == nil {
		return t.Format(constants.TimeFormat), KindTime
	}
	if t, err := f.ParseDateLenient(value); err == nil {
		return t.Format(constants.DateFormat), KindDate
	}
	return value, KindUnknown
}

// Renderings shows the input in every display format, in presentation order.
func (m Model) Renderings() []Rendering {
	canonical, kind := m.Canonical()

	rows := make([]Rendering, 0, len(constants.DisplayFormats))
	for _, format := range constants.DisplayFormats {
		cfg := m.base
		cfg.DisplayFormat = format
		f := datefmt.New(cfg)

		r := Rendering{Format: format}
		switch kind {
		case KindDate:
			r.Text, r.Err = f.DisplayDate(canonical)
		case KindDateTime:
			r.Text, r.Err = f.DisplayDateTime(canonical)
		case KindTime:
			r.Text, r.Err = f.DisplayTime(canonical)
		default:
			r.Err = &datefmt.ParseError{Input: canonical, Err: datefmt.ErrParseFailure}
		}
		rows = append(rows, r)
	}
	return rows
}
