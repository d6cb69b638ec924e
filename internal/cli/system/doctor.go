package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/datefmt/internal/cli"
	"github.com/julianstephens/datefmt/internal/constants"
	"github.com/julianstephens/datefmt/internal/keyring"
	"github.com/julianstephens/datefmt/internal/migration"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsDB checks are skipped when the database cannot be reached
	needsDB bool
	// warnOnly checks report a warning instead of failing the run
	warnOnly bool
	run      func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Settings valid", needsDB: true, run: checkSettings},
	{name: "Format round trip", needsDB: true, run: checkRoundTrip},
	{name: "Clock", run: func(*cli.Context) error { return checkClock(time.Now()) }},
	{name: "OS keyring", warnOnly: true, run: checkKeyring},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true

	for i, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if i == 0 {
				dbReachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	// A too-new schema is still reachable; the schema version check reports it
	if err := ctx.Store.Load(); err != nil && !errors.Is(err, migration.ErrSchemaTooNew) {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.SchemaStatus(); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	status, err := ctx.Store.SchemaStatus()
	if err != nil {
		return fmt.Errorf("failed to get schema status: %w", err)
	}
	if status.Current > status.Latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", status.Current, status.Latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	status, err := ctx.Store.SchemaStatus()
	if err != nil {
		return fmt.Errorf("failed to get schema status: %w", err)
	}
	if len(status.Pending) > 0 {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'datefmt migrate')", status.Current, status.Latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return settings.Validate()
}

// checkRoundTrip formats a known date with the stored settings and reads it back.
func checkRoundTrip(ctx *cli.Context) error {
	f, err := ctx.Formatter("")
	if err != nil {
		return err
	}

	const stored = "2024-03-07"
	displayed, err := f.DisplayDate(stored)
	if err != nil {
		return err
	}
	t, err := f.ParseDateDisplayFirst(displayed)
	if err != nil {
		return err
	}
	if got := t.Format(constants.DateFormat); got != stored {
		return fmt.Errorf("%s displayed as %s but read back as %s", stored, displayed, got)
	}
	return nil
}

func checkClock(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkKeyring(*cli.Context) error {
	if !keyring.IsAvailable() {
		return fmt.Errorf("OS keyring is not available; PostgreSQL connection strings must come from --config or %s", constants.ConnectionEnvVar)
	}
	return nil
}
