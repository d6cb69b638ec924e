package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/datefmt/internal/cli"
	"github.com/julianstephens/datefmt/internal/keyring"
	"github.com/julianstephens/datefmt/internal/storage/postgres"
)

// KeyringSetCmd stores a PostgreSQL connection string in the OS keyring
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !postgres.IsConnString(cmd.ConnectionString) {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := postgres.ValidateConnString(cmd.ConnectionString); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		// The keyring is encrypted, so a password is allowed here
		ctx.Println("⚠️  Warning: Connection string contains embedded credentials.")
		ctx.Println("   It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return err
	}

	ctx.Println("✓ Connection string stored in OS keyring")
	ctx.Println("  datefmt will use it when --config is not given")
	return nil
}

// KeyringGetCmd shows the stored connection string with the user hidden
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring. Use 'datefmt keyring set' to store one")
		}
		return err
	}

	ctx.Println("Connection string stored in keyring:")
	ctx.Println(keyring.Describe(connStr))
	return nil
}

// KeyringDeleteCmd removes the stored connection string
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return err
	}

	ctx.Println("✓ Connection string deleted from OS keyring")
	return nil
}

// KeyringStatusCmd reports whether the OS keyring is usable
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		ctx.Println("❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}

	ctx.Println("✓ OS keyring is available")
	if _, err := keyring.GetConnectionString(); err == nil {
		ctx.Println("✓ Connection string is stored in keyring")
	} else if errors.Is(err, keyring.ErrNotFound) {
		ctx.Println("ℹ No connection string stored in keyring")
	}
	return nil
}
