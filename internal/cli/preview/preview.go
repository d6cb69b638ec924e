package preview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/datefmt/internal/cli"
	"github.com/julianstephens/datefmt/internal/constants"
	"github.com/julianstephens/datefmt/internal/logger"
	"github.com/julianstephens/datefmt/internal/tui"
)

type PreviewCmd struct {
	Value    string `arg:"" optional:"" help:"Initial value to preview, e.g. 2024-03-07 or 14:30."`
	ReadOnly bool   `help:"Do not allow saving the selected format."`
}

func (c *PreviewCmd) Run(ctx *cli.Context) error {
	m, err := c.model(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}

func (c *PreviewCmd) model(ctx *cli.Context) (tui.Model, error) {
	settings, err := ctx.Settings()
	if err != nil {
		return tui.Model{}, err
	}

	var save tui.SaveFunc
	if !c.ReadOnly {
		save = saveFormat(ctx)
	}
	return tui.NewModel(settings.Config(), c.Value, save), nil
}

// saveFormat reloads the settings before writing so a locale changed
// elsewhere during the session is not overwritten.
func saveFormat(ctx *cli.Context) tui.SaveFunc {
	return func(format constants.DisplayFormat) error {
		settings, err := ctx.Settings()
		if err != nil {
			return err
		}
		settings.DateFormat = format
		if err := settings.Validate(); err != nil {
			return err
		}
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		logger.Info("Display format updated from preview", "format", format)
		return nil
	}
}
