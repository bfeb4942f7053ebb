// Package migrations embeds the database schema migration files.
package migrations

import "embed"

//go:embed *.up.sql
var FS embed.FS
