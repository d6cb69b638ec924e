package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/datefmt/internal/constants"
	"github.com/julianstephens/datefmt/internal/logger"
	"github.com/julianstephens/datefmt/internal/migration"
	"github.com/julianstephens/datefmt/internal/models"
	"github.com/julianstephens/datefmt/internal/storage"
	"github.com/julianstephens/datefmt/migrations"
)

type Store struct {
	connStr string
	db      *sql.DB
}

var _ storage.Provider = (*Store)(nil)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

const sslHint = " (hint: try adding ?sslmode=disable to your connection string)"

func New(connStr string) *Store {
	return &Store{
		connStr: withSearchPath(connStr),
	}
}

// IsURL reports whether connStr uses the postgres:// or postgresql:// scheme.
func IsURL(connStr string) bool {
	return strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://")
}

// IsConnString reports whether value looks like a PostgreSQL connection string
// rather than a file path: a postgres URL or a DSN naming a host or database.
func IsConnString(value string) bool {
	return IsURL(value) || hasParam(value, "host") || hasParam(value, "dbname")
}

// withSearchPath points search_path at the datefmt schema unless the caller set one.
func withSearchPath(connStr string) string {
	if IsURL(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return connStr
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
		}
		return u.String()
	}

	if !hasParam(connStr, "search_path") {
		return strings.TrimSpace(connStr) + " search_path=" + constants.AppName
	}
	return connStr
}

// hasParam reports whether a DSN-style connection string sets key (case-insensitive).
func hasParam(connStr, key string) bool {
	for _, part := range strings.Fields(connStr) {
		k, _, ok := strings.Cut(part, "=")
		if ok && strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// hasSSLMode reports whether sslmode is set, in either URL or DSN form.
func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}
	return hasParam(connStr, "sslmode")
}

// ValidateConnString checks that connStr is a PostgreSQL URL or DSN that
// lib/pq accepts and that it carries no password. Passwords belong in
// ~/.pgpass or PGPASSWORD.
func ValidateConnString(connStr string) (bool, error) {
	if strings.TrimSpace(connStr) == "" {
		return false, fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return false, fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if IsURL(connStr) {
		parsedURL, err := url.Parse(connStr)
		if err != nil {
			return false, fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}

		if _, isSet := parsedURL.User.Password(); isSet {
			return false, ErrEmbeddedCredentials
		}

		if parsedURL.Host == "" && parsedURL.User == nil && (parsedURL.Path == "" || parsedURL.Path == "/") {
			return false, fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
		return true, nil
	}

	if hasParam(connStr, "password") {
		return false, ErrEmbeddedCredentials
	}
	return true, nil
}

func (s *Store) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Settings are a handful of rows, a small pool is plenty
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return fmt.Errorf("failed to connect to database: %w%s", err, sslHint)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	s.db = db
	return nil
}

// Init creates the datefmt schema, applies migrations and writes default
// settings when none are stored.
func (s *Store) Init() error {
	if s.db == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	if _, err := s.db.Exec("CREATE SCHEMA IF NOT EXISTS " + constants.AppName); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := s.Migrate(func(msg string) { logger.Info(msg) }); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if _, err := s.GetSettings(); err != nil {
		logger.Debug("Writing default settings", "store", s.GetConfigPath())
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

// Load connects and checks the schema version. A search_path naming no
// existing schema means init has not run.
func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if err := s.open(); err != nil {
		return err
	}

	var schema sql.NullString
	if err := s.db.QueryRow("SELECT current_schema()").Scan(&schema); err != nil {
		s.Close()
		return fmt.Errorf("failed to query current schema: %w", err)
	}
	if !schema.Valid {
		s.Close()
		return storage.ErrNotInitialized
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	if err := runner.ValidateVersion(); err != nil {
		return err
	}
	if status, err := runner.Status(); err == nil && len(status.Pending) > 0 {
		logger.Warn("Database has pending migrations, run 'datefmt migrate'", "schema", schema.String, "current", status.Current, "latest", status.Latest)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
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

// GetConfigPath returns a non-sensitive identifier instead of the connection string.
func (s *Store) GetConfigPath() string {
	return "postgresql"
}
