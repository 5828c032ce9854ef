// Package migrations embeds the goose migrations of the SQL-backed stores.
package migrations

import "embed"

// Migrations holds one directory per dialect: sqlite/ and postgres/.
//
//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
