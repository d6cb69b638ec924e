package postgres

import (
	"errors"
	"net/url"
	"os"
	"testing"

	"github.com/julianstephens/datefmt/internal/constants"
	"github.com/julianstephens/datefmt/internal/models"
	"github.com/julianstephens/datefmt/internal/storage"
)

// TestStore_Integration runs against a real database.
// Set POSTGRES_TEST_URL to run it, e.g.
// POSTGRES_TEST_URL="postgres://datefmt@localhost:5432/datefmt_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	t.Run("Settings", func(t *testing.T) {
		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("Failed to get settings: %v", err)
		}
		if settings.DateFormat == "" || settings.Locale == "" {
			t.Errorf("Expected default settings, got %+v", settings)
		}

		want := models.Settings{DateFormat: constants.DisplayDayMonthSlash, Locale: "en-GB"}
		if err := store.SaveSettings(want); err != nil {
			t.Fatalf("Failed to save settings: %v", err)
		}

		got, err := store.GetSettings()
		if err != nil {
			t.Fatalf("Failed to get updated settings: %v", err)
		}
		if got != want {
			t.Errorf("GetSettings() = %+v, want %+v", got, want)
		}

		if err := store.SaveSettings(models.DefaultSettings()); err != nil {
			t.Fatalf("Failed to restore settings: %v", err)
		}
	})

	t.Run("Migrations", func(t *testing.T) {
		n, err := store.Migrate(nil)
		if err != nil {
			t.Fatalf("Migrate() failed: %v", err)
		}
		if n != 0 {
			t.Errorf("Migrate() after Init applied %d migrations, want 0", n)
		}

		status, err := store.SchemaStatus()
		if err != nil {
			t.Fatalf("SchemaStatus() failed: %v", err)
		}
		if !status.UpToDate() {
			t.Errorf("SchemaStatus() = %+v, want up to date", status)
		}
	})
}

func TestLoadWithoutInit_Integration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	// Point search_path at a schema that init never created
	const missing = "datefmt_never_initialized"
	if IsURL(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			t.Fatalf("failed to parse POSTGRES_TEST_URL: %v", err)
		}
		q := u.Query()
		q.Set("search_path", missing)
		u.RawQuery = q.Encode()
		connStr = u.String()
	} else {
		connStr += " search_path=" + missing
	}

	store := New(connStr)
	defer store.Close()
	if err := store.Load(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
}
