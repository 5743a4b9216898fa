// Package migrations embeds the goose SQL migrations.
// The SQL is written to run unchanged on PostgreSQL and SQLite.
package migrations

import "embed"

// Migrations holds the *.sql files at the root of the FS.
//
//go:embed *.sql
var Migrations embed.FS
