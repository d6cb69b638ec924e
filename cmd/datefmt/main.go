package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/datefmt/internal/cli"
	"github.com/julianstephens/datefmt/internal/cli/backups"
	"github.com/julianstephens/datefmt/internal/cli/format"
	"github.com/julianstephens/datefmt/internal/cli/parse"
	"github.com/julianstephens/datefmt/internal/cli/preview"
	"github.com/julianstephens/datefmt/internal/cli/settings"
	"github.com/julianstephens/datefmt/internal/cli/system"
	"github.com/julianstephens/datefmt/internal/constants"
	apperrors "github.com/julianstephens/datefmt/internal/errors"
	"github.com/julianstephens/datefmt/internal/keyring"
	"github.com/julianstephens/datefmt/internal/logger"
	"github.com/julianstephens/datefmt/internal/storage"
	"github.com/julianstephens/datefmt/internal/storage/postgres"
	"github.com/julianstephens/datefmt/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path or PostgreSQL connection string. Credentials must NOT be embedded in the connection string; use .pgpass, the ${env} variable or 'datefmt keyring set' instead." type:"string" default:"${config}"`
	Debug   bool   `help:"Write debug logs to stderr as well as the log file."`

	Format struct {
		Date     format.DateCmd     `cmd:"" help:"Render stored yyyy-mm-dd dates in the display format."`
		DateTime format.DateTimeCmd `cmd:"" name:"datetime" help:"Render stored yyyy-mm-dd HH:ii:ss date-times in the display format."`
		Time     format.TimeCmd     `cmd:"" help:"Render stored HH:ii times."`
	} `cmd:"" help:"Convert stored values to display form."`
	Parse struct {
		Date     parse.DateCmd     `cmd:"" help:"Parse a user-entered date into yyyy-mm-dd."`
		DateTime parse.DateTimeCmd `cmd:"" name:"datetime" help:"Parse a user-entered date-time."`
		Time     parse.TimeCmd     `cmd:"" help:"Parse a user-entered HH:MM time."`
	} `cmd:"" help:"Convert user input to stored form."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage display settings."`
	Preview  preview.PreviewCmd   `cmd:"" help:"Preview a value in every display format."`
	Init     system.InitCmd       `cmd:"" help:"Initialize datefmt storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Back up the SQLite database." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore the SQLite database from a backup."`
	} `cmd:"" help:"Manage SQLite database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the user redacted."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Report whether the OS keyring is usable."`
	} `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Convert dates and times between storage and display formats"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"config":  constants.DefaultConfigPath,
			"env":     constants.ConnectionEnvVar,
		},
	)

	if err := run(ctx); err != nil {
		apperrors.Fatal(err)
	}
}

func run(ctx *kong.Context) error {
	store, err := resolveStore(CLI.Config, CLI.Config == constants.DefaultConfigPath)
	if err != nil {
		return err
	}

	closer, err := logger.Init(logger.Config{Debug: CLI.Debug, Dir: logDir(store)})
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Debug("Resolved storage", "backend", store.GetConfigPath(), "command", ctx.Command())

	if needsLoad(ctx.Command()) {
		if err := store.Load(); err != nil {
			return err
		}
	}
	defer store.Close()

	return ctx.Run(&cli.Context{Store: store})
}

// resolveStore picks the storage backend. An explicit connection string
// wins; with the default config path the environment and then the OS
// keyring are consulted before falling back to SQLite.
func resolveStore(config string, isDefault bool) (storage.Provider, error) {
	if postgres.IsConnString(config) {
		if _, err := postgres.ValidateConnString(config); err != nil {
			return nil, err
		}
		return postgres.New(config), nil
	}

	if isDefault {
		if connStr := os.Getenv(constants.ConnectionEnvVar); connStr != "" {
			return postgres.New(connStr), nil
		}

		// A missing or unreachable keyring falls back to SQLite
		if connStr, err := keyring.GetConnectionString(); err == nil {
			return postgres.New(connStr), nil
		}
	}

	path, err := expandHome(config)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

// needsLoad reports whether command runs against an initialized store.
// Backup commands work on the file directly so a database from a newer
// binary can still be restored, and doctor loads the store as its first check.
func needsLoad(command string) bool {
	for _, prefix := range []string{"init", "keyring", "backup", "doctor"} {
		if strings.HasPrefix(command, prefix) {
			return false
		}
	}
	return true
}

func logDir(store storage.Provider) string {
	if s, ok := store.(*sqlite.Store); ok {
		return filepath.Dir(s.GetConfigPath())
	}
	dir, err := expandHome(filepath.Dir(constants.DefaultConfigPath))
	if err != nil {
		return os.TempDir()
	}
	return dir
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
