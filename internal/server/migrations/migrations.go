// Package migrations embeds the goose SQL migrations for each supported
// database dialect.
package migrations

import "embed"

// Postgres holds migrations under the "postgres" directory.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds migrations under the "sqlite" directory.
//
//go:embed sqlite/*.sql
var SQLite embed.FS
