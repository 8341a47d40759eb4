// Package migrations embeds terminology schema migrations.
package migrations

import "embed"

// FS exposes the SQL migration files.
//
//go:embed *.sql
var FS embed.FS
