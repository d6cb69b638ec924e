package migration

import (
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/datefmt/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mapFS(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count == 1
}

func TestGetCurrentVersion(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, mapFS(map[string]string{
		"001_test.sql": "CREATE TABLE test (id INTEGER);",
	}))

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}

	if err := runner.SetVersion(5); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}

	version, err = runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 5 {
		t.Errorf("expected version 5, got %d", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, mapFS(map[string]string{
		"003_another.sql": "CREATE TABLE test2 (id INTEGER);",
		"001_init.sql":    "CREATE TABLE test1 (id INTEGER);",
		"002_update.sql":  "ALTER TABLE test1 ADD COLUMN name TEXT;",
		"README.md":       "not a migration",
	}))

	got, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}

	want := []struct {
		version int
		name    string
	}{
		{1, "init"},
		{2, "update"},
		{3, "another"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d migrations, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Version != w.version || got[i].Name != w.name {
			t.Errorf("migration %d = (%d, %q), want (%d, %q)", i, got[i].Version, got[i].Name, w.version, w.name)
		}
	}
}

func TestReadMigrationFilesErrors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "missing underscore",
			files:   map[string]string{"001init.sql": "SELECT 1;"},
			wantErr: "invalid migration filename format",
		},
		{
			name:    "version zero",
			files:   map[string]string{"000_init.sql": "SELECT 1;"},
			wantErr: "version must be at least 1",
		},
		{
			name:    "non-numeric version",
			files:   map[string]string{"abc_init.sql": "SELECT 1;"},
			wantErr: "invalid version number",
		},
		{
			name: "duplicate version",
			files: map[string]string{
				"001_init.sql":  "SELECT 1;",
				"001_other.sql": "SELECT 2;",
			},
			wantErr: "duplicate migration version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(setupTestDB(t), mapFS(tt.files))
			_, err := runner.ReadMigrationFiles()
			if err == nil {
				t.Fatal("ReadMigrationFiles should have failed")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyMigrationsFromScratch(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, mapFS(map[string]string{
		"001_init.sql":  "CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT);",
		"002_audit.sql": "CREATE TABLE audit (id INTEGER PRIMARY KEY, key TEXT);",
	}))

	var messages []string
	count, err := runner.ApplyMigrations(func(msg string) { messages = append(messages, msg) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 migrations applied, got %d", count)
	}
	if len(messages) == 0 {
		t.Error("expected progress messages")
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	for _, table := range []string{"settings", "audit"} {
		if !tableExists(t, db, table) {
			t.Errorf("%s table was not created", table)
		}
	}
}

func TestApplyMigrationsIncremental(t *testing.T) {
	db := setupTestDB(t)
	files := mapFS(map[string]string{
		"001_init.sql": "CREATE TABLE settings (key TEXT PRIMARY KEY);",
	})
	runner := NewRunner(db, files)

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations (1st) failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 migration applied, got %d", count)
	}

	files["002_value.sql"] = &fstest.MapFile{Data: []byte("ALTER TABLE settings ADD COLUMN value TEXT;")}

	status, err := runner.Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.UpToDate() || len(status.Pending) != 1 || status.Pending[0].Version != 2 {
		t.Errorf("Status() = %+v, want one pending migration at version 2", status)
	}

	count, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations (2nd) failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 more migration applied, got %d", count)
	}

	status, err = runner.Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !status.UpToDate() || status.Current != 2 || status.Latest != 2 {
		t.Errorf("Status() = %+v, want up to date at version 2", status)
	}
}

func TestApplyMigrationsNoOp(t *testing.T) {
	runner := NewRunner(setupTestDB(t), mapFS(map[string]string{
		"001_init.sql": "CREATE TABLE settings (key TEXT PRIMARY KEY);",
	}))

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations (1st) failed: %v", err)
	}

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations (2nd) failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 migrations applied on second run, got %d", count)
	}
}

func TestApplyMigrationsEmptyFS(t *testing.T) {
	runner := NewRunner(setupTestDB(t), fstest.MapFS{})

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 migrations applied, got %d", count)
	}
}

func TestMigrationRollbackOnError(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, mapFS(map[string]string{
		"001_init.sql": `
			CREATE TABLE settings (key TEXT PRIMARY KEY);
			THIS IS INVALID SQL;
		`,
	}))

	if _, err := runner.ApplyMigrations(nil); err == nil {
		t.Fatal("ApplyMigrations should have failed with invalid SQL")
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 after failed migration, got %d", version)
	}
	if tableExists(t, db, "settings") {
		t.Error("table should not exist after failed migration")
	}
}

func TestValidateVersionNewerDatabase(t *testing.T) {
	runner := NewRunner(setupTestDB(t), mapFS(map[string]string{
		"001_init.sql": "CREATE TABLE settings (key TEXT PRIMARY KEY);",
	}))

	if err := runner.SetVersion(10); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}

	if err := runner.ValidateVersion(); !errors.Is(err, ErrSchemaTooNew) {
		t.Fatalf("ValidateVersion() error = %v, want ErrSchemaTooNew", err)
	}

	if _, err := runner.ApplyMigrations(nil); !errors.Is(err, ErrSchemaTooNew) {
		t.Fatalf("ApplyMigrations() error = %v, want ErrSchemaTooNew", err)
	}
}

func TestGetLatestVersion(t *testing.T) {
	runner := NewRunner(setupTestDB(t), mapFS(map[string]string{
		"001_init.sql":   "SELECT 1;",
		"003_posts.sql":  "SELECT 3;",
		"002_update.sql": "SELECT 2;",
	}))

	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		t.Fatalf("GetLatestVersion failed: %v", err)
	}
	if latestVersion != 3 {
		t.Errorf("expected latest version 3, got %d", latestVersion)
	}
}

func TestEmbeddedSQLiteMigrations(t *testing.T) {
	db := setupTestDB(t)

	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		t.Fatalf("fs.Sub failed: %v", err)
	}
	runner := NewRunner(db, sub)

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if count < 1 {
		t.Fatalf("expected at least one embedded migration, got %d", count)
	}
	if !tableExists(t, db, "settings") {
		t.Error("settings table was not created")
	}

	if _, err := db.Exec("INSERT INTO settings (key, value, updated_at) VALUES ('date_format', 'mm/dd/yyyy', '')"); err != nil {
		t.Errorf("settings table is missing expected columns: %v", err)
	}
}

func TestEmbeddedPostgresMigrationsParse(t *testing.T) {
	sub, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		t.Fatalf("fs.Sub failed: %v", err)
	}
	runner := NewRunner(nil, sub)

	pg, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}

	sqliteSub, _ := fs.Sub(migrations.FS, "sqlite")
	lite, err := NewRunner(nil, sqliteSub).ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}

	if len(pg) != len(lite) {
		t.Fatalf("postgres has %d migrations, sqlite has %d", len(pg), len(lite))
	}
	for i := range pg {
		if pg[i].Version != lite[i].Version || pg[i].Name != lite[i].Name {
			t.Errorf("migration %d differs between backends: %d_%s vs %d_%s", i, pg[i].Version, pg[i].Name, lite[i].Version, lite[i].Name)
		}
	}
}
