package backups

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/datefmt/internal/backup"
	"github.com/julianstephens/datefmt/internal/cli"
	"github.com/julianstephens/datefmt/internal/storage/sqlite"
)

var ErrUnsupportedStore = errors.New("backups are only supported for SQLite storage")

func manager(ctx *cli.Context) (*backup.Manager, error) {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil, ErrUnsupportedStore
	}
	return backup.NewManager(ctx.Store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.Printf("✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		ctx.Println("No backups found.")
		ctx.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	ctx.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), backup.MaxBackups)
	for _, b := range backups {
		ctx.Printf("  %s  %s  (%.1f KB)\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), float64(b.Size)/1024.0)
	}
	ctx.Printf("\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or file name of the backup to restore."`
	Yes        bool   `short:"y" help:"Restore without asking for confirmation."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	path, err := mgr.Resolve(c.BackupFile)
	if err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Replace the current database with " + filepath.Base(path) + "?").
			Description("The current database is backed up first.").
			Value(&confirmed).
			Run()
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			ctx.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	previous, err := mgr.Restore(path)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	// Reopen so a snapshot from a newer binary is reported now
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("restored database cannot be opened: %w", err)
	}

	if previous != "" {
		ctx.Printf("Backed up replaced database to: %s\n", filepath.Base(previous))
	}
	ctx.Printf("✓ Database restored from: %s\n", filepath.Base(path))
	return nil
}
