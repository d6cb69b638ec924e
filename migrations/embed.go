package migrations

import "embed"

// FS holds the schema migrations for each backend, one subdirectory per driver.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
