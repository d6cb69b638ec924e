package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/julianstephens/datefmt/internal/cli"
	"github.com/julianstephens/datefmt/internal/constants"
	"github.com/julianstephens/datefmt/internal/datefmt"
	"github.com/julianstephens/datefmt/internal/models"
)

// sample is rendered next to each format so the choice is concrete
const sample = "2024-03-07"

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(14)
	valueStyle   = lipgloss.NewStyle().Bold(true)
)

type SettingsCmd struct {
	List        bool    `help:"List current settings."`
	DateFormat  *string `help:"Display format: mm/dd/yyyy, dd/mm/yyyy, mm-dd-yyyy or dd-mm-yyyy."`
	Locale      *string `help:"BCP 47 locale tag, e.g. en-GB."`
	Interactive bool    `short:"i" help:"Edit settings in an interactive form."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	if c.List {
		ctx.Println(RenderSettings(settings))
		return nil
	}

	updated := false
	if c.Interactive {
		if err := NewForm(&settings).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				ctx.Println("Cancelled, settings unchanged.")
				return nil
			}
			return fmt.Errorf("settings form failed: %w", err)
		}
		updated = true
	}
	if c.DateFormat != nil {
		settings.DateFormat = constants.DisplayFormat(*c.DateFormat)
		updated = true
	}
	if c.Locale != nil {
		settings.Locale = *c.Locale
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	ctx.Println(RenderSettings(settings))
	return nil
}

// RenderSettings formats the settings as a labelled block with an example date.
func RenderSettings(s models.Settings) string {
	f := datefmt.New(s.Config())

	rows := []string{
		headingStyle.Render("Current Settings:"),
		labelStyle.Render("  Date Format") + valueStyle.Render(string(s.DateFormat)),
		labelStyle.Render("  Locale") + valueStyle.Render(s.Locale),
		labelStyle.Render("  Example") + f.FormatDate(sample),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// NewForm builds the interactive settings form. Completing it writes into s.
func NewForm(s *models.Settings) *huh.Form {
	options := make([]huh.Option[constants.DisplayFormat], 0, len(constants.DisplayFormats))
	for _, format := range constants.DisplayFormats {
		example := datefmt.New(datefmt.Config{DisplayFormat: format}).FormatDate(sample)
		options = append(options, huh.NewOption(fmt.Sprintf("%s  (%s)", format, example), format))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[constants.DisplayFormat]().
				Title("Date Format").
				Description("How dates are shown").
				Options(options...).
				Value(&s.DateFormat),
			huh.NewInput().
				Title("Locale").
				Description("BCP 47 tag, e.g. en-US").
				Value(&s.Locale).
				Validate(ValidateLocale),
		),
	)
}

// ValidateLocale accepts well-formed BCP 47 tags.
func ValidateLocale(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("locale cannot be empty")
	}
	if _, err := language.Parse(s); err != nil {
		return fmt.Errorf("not a valid locale: %w", err)
	}
	return nil
}
