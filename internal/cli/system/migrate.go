package system

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/datefmt/internal/backup"
	"github.com/julianstephens/datefmt/internal/cli"
	"github.com/julianstephens/datefmt/internal/storage/sqlite"
)

type MigrateCmd struct {
	NoBackup bool `help:"Skip the SQLite backup taken before applying migrations."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := c.backupIfPending(ctx); err != nil {
		return err
	}

	count, err := ctx.Store.Migrate(func(msg string) {
		ctx.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		ctx.Println("No migrations to apply. Database is up to date.")
	} else {
		ctx.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}

func (c *MigrateCmd) backupIfPending(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok || c.NoBackup {
		return nil
	}

	status, err := ctx.Store.SchemaStatus()
	if err != nil {
		return fmt.Errorf("failed to read schema status: %w", err)
	}
	if len(status.Pending) == 0 {
		return nil
	}

	path, err := backup.NewManager(ctx.Store.GetConfigPath()).Create()
	if err != nil {
		return fmt.Errorf("failed to back up database before migrating: %w", err)
	}
	ctx.Printf("Backed up database to: %s\n", filepath.Base(path))
	return nil
}
