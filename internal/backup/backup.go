package backup

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/datefmt/internal/logger"
)

const (
	// MaxBackups is the number of snapshots kept after rotation
	MaxBackups = 10
	// DirName is the directory next to the database that holds snapshots
	DirName = "backups"

	filePrefix      = "datefmt-"
	fileSuffix      = ".db"
	timestampLayout = "20060102-150405"
)

var (
	ErrNoDatabase = errors.New("database does not exist")
	ErrNotFound   = errors.New("backup not found")
)

// Info describes one snapshot on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates, lists and restores snapshots of a SQLite settings database.
type Manager struct {
	dbPath string
	dir    string
	now    func() time.Time
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath: dbPath,
		dir:    filepath.Join(filepath.Dir(dbPath), DirName),
		now:    time.Now,
	}
}

// Dir returns the snapshot directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Create snapshots the database and rotates old snapshots.
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "dir", m.dir, "error", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if _, err := os.Stat(m.dbPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNoDatabase, m.dbPath)
		}
		return "", err
	}
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.nextPath()
	if err != nil {
		return "", err
	}
	if err := m.snapshot(path); err != nil {
		return "", fmt.Errorf("failed to back up database: %w", err)
	}
	logger.Info("Created backup", "path", path)
	return path, nil
}

// nextPath returns an unused snapshot path for the current second.
func (m *Manager) nextPath() (string, error) {
	stamp := m.now().Format(timestampLayout)
	path := filepath.Join(m.dir, filePrefix+stamp+fileSuffix)
	for i := 1; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if i > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.dir, fmt.Sprintf("%s%s-%d%s", filePrefix, stamp, i, fileSuffix))
	}
}

// snapshot writes a consistent copy of the database with VACUUM INTO,
// falling back to a file copy.
func (m *Manager) snapshot(dest string) error {
	db, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()

	if err := verifyDB(db); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		logger.Debug("VACUUM INTO failed, copying file", "error", err)
		db.Close()
		return copyFile(m.dbPath, dest)
	}
	return nil
}

// List returns the snapshots, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Info{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
		if len(stamp) < len(timestampLayout) {
			continue
		}
		ts, err := time.ParseInLocation(timestampLayout, stamp[:len(timestampLayout)], time.Local)
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.dir, name),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	// Names sort with their counters, so ties on the timestamp keep creation order
	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return filepath.Base(backups[i].Path) > filepath.Base(backups[j].Path)
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Resolve finds a snapshot given as an absolute path, a path relative to
// the working directory, or a file name inside the backup directory.
func (m *Manager) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return name, nil
	}
	if _, err := os.Stat(name); err == nil {
		return filepath.Abs(name)
	}
	candidate := filepath.Join(m.dir, name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: tried current directory and %s", ErrNotFound, m.dir)
}

// Restore replaces the database with the snapshot at path. The current
// database, if any, is snapshotted first and that path is returned. The
// caller must close its own handle on the database beforehand.
func (m *Manager) Restore(path string) (string, error) {
	if err := verifyFile(path); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var previous string
	if _, err := os.Stat(m.dbPath); err == nil {
		// Not rotated, so restoring from the oldest snapshot never deletes it
		previous, err = m.create()
		if err != nil {
			return "", fmt.Errorf("failed to back up current database before restore: %w", err)
		}
	}

	tmp := m.dbPath + ".restore.tmp"
	if err := copyFile(path, tmp); err != nil {
		return "", fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.dbPath); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("Failed to remove temporary restore file", "path", tmp, "error", rmErr)
		}
		return "", fmt.Errorf("failed to restore database: %w", err)
	}
	logger.Info("Restored database", "from", path, "previous", previous)
	return previous, nil
}

func verifyFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()
	return verifyDB(db)
}

// verifyDB checks that db is a SQLite database holding a settings table.
func verifyDB(db *sql.DB) error {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'settings'").Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		return errors.New("no settings table")
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
