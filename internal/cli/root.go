package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/datefmt/internal/constants"
	"github.com/julianstephens/datefmt/internal/datefmt"
	"github.com/julianstephens/datefmt/internal/logger"
	"github.com/julianstephens/datefmt/internal/models"
	"github.com/julianstephens/datefmt/internal/storage"
)

type Context struct {
	Store storage.Provider
	// Out receives command output; nil means stdout
	Out io.Writer
}

// Stdout returns the writer commands print to.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Printf writes formatted command output.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

// Println writes a line of command output.
func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Settings returns the stored settings with defaults filled in. A store
// without settings rows yields the defaults.
func (c *Context) Settings() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if errors.Is(err, storage.ErrSettingsNotFound) {
		logger.Debug("No stored settings, using defaults")
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

// Formatter builds a formatter from the stored settings. A non-empty
// override replaces the stored display format for this call only.
func (c *Context) Formatter(override constants.DisplayFormat) (*datefmt.Formatter, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, err
	}

	cfg := settings.Config()
	if override != "" {
		cfg.DisplayFormat = override
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return datefmt.New(cfg), nil
}
