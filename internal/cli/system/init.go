package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/datefmt/internal/backup"
	"github.com/julianstephens/datefmt/internal/cli"
	"github.com/julianstephens/datefmt/internal/logger"
	"github.com/julianstephens/datefmt/internal/storage/sqlite"
)

type InitCmd struct {
	Force bool `help:"Back up and delete the existing SQLite database before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized datefmt storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return fmt.Errorf("--force only supports SQLite storage")
	}

	dbPath := ctx.Store.GetConfigPath()
	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to access existing database: %w", err)
	}

	// A database too broken to snapshot is still reset
	if path, err := backup.NewManager(dbPath).Create(); err != nil {
		logger.Warn("Failed to back up database before reset", "path", dbPath, "error", err)
		ctx.Printf("Warning: could not back up existing database: %v\n", err)
	} else {
		ctx.Printf("Backed up existing database to: %s\n", path)
	}

	// Close first so the file is not held open
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing database: %w", err)
	}
	if err := os.Remove(dbPath); err != nil {
		return fmt.Errorf("failed to delete existing database: %w", err)
	}
	ctx.Printf("Deleted existing database at: %s\n", dbPath)
	return nil
}
