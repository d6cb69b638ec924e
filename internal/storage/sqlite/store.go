package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/datefmt/internal/logger"
	"github.com/julianstephens/datefmt/internal/migration"
	"github.com/julianstephens/datefmt/internal/models"
	"github.com/julianstephens/datefmt/internal/storage"
	"github.com/julianstephens/datefmt/migrations"
)

// ErrNotInitialized is returned by Load when the database file does not exist
var ErrNotInitialized = storage.ErrNotInitialized

type Store struct {
	path string
	db   *sql.DB
}

var _ storage.Provider = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// Init creates the database file if needed, applies migrations and writes
// default settings when none are stored.
func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.Migrate(func(msg string) { logger.Info(msg) }); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	settings, err := s.GetSettings()
	if err != nil || settings.DateFormat == "" {
		logger.Debug("Writing default settings", "path", s.path)
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

// Load opens an existing database and checks its schema version.
func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}

	if err := s.open(); err != nil {
		return err
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	if err := runner.ValidateVersion(); err != nil {
		return err
	}
	warnPending(runner, s.path)
	return nil
}

func warnPending(runner *migration.Runner, path string) {
	status, err := runner.Status()
	if err != nil || len(status.Pending) == 0 {
		return
	}
	logger.Warn("Database has pending migrations, run 'datefmt migrate'", "path", path, "current", status.Current, "latest", status.Latest)
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps writes serialized on the file
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS), nil
}

// Migrate applies pending migrations and returns how many ran.
func (s *Store) Migrate(logFn func(string)) (int, error) {
	runner, err := s.runner()
	if err != nil {
		return 0, err
	}
	return runner.ApplyMigrations(logFn)
}

// SchemaStatus reports the current and latest schema versions.
func (s *Store) SchemaStatus() (migration.Status, error) {
	runner, err := s.runner()
	if err != nil {
		return migration.Status{}, err
	}
	return runner.Status()
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying connection, nil before Init or Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
