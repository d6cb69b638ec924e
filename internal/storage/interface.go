package storage

import (
	"errors"
	"fmt"

	"github.com/julianstephens/datefmt/internal/migration"
	"github.com/julianstephens/datefmt/internal/models"
)

var (
	// ErrSettingsNotFound is returned by GetSettings when no settings rows exist
	ErrSettingsNotFound = errors.New("settings not found")
	// ErrNotInitialized is returned by Load when the database or schema does not exist
	ErrNotInitialized = errors.New("storage not initialized, run 'datefmt init' first")
	// ErrMigrationsPending wraps write failures on a schema that is behind this build
	ErrMigrationsPending = errors.New("database has pending migrations, run 'datefmt migrate'")
)

// Provider persists the formatter settings.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Schema
	Migrate(logFn func(string)) (int, error)
	SchemaStatus() (migration.Status, error)

	// Utils
	GetConfigPath() string
}

// WithMigrationHint wraps err with ErrMigrationsPending when p has
// migrations left to apply. Other errors are returned unchanged.
func WithMigrationHint(p Provider, err error) error {
	if err == nil {
		return nil
	}
	status, statusErr := p.SchemaStatus()
	if statusErr != nil || len(status.Pending) == 0 {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMigrationsPending, err)
}
