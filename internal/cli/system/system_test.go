package system

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/julianstephens/datefmt/internal/cli"
	"github.com/julianstephens/datefmt/internal/storage/sqlite"
)

func setupTestContext(t *testing.T, initialize bool) (*cli.Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if initialize {
		if err := store.Init(); err != nil {
			t.Fatalf("failed to initialize store: %v", err)
		}
	}
	t.Cleanup(func() { store.Close() })

	var out bytes.Buffer
	return &cli.Context{Store: store, Out: &out}, store, &out
}
