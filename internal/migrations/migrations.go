// Package migrations embeds the goose SQL migrations of the mission tracker schema.
package migrations

import "embed"

// Migrations holds the *.sql files applied by repositories.Migrate.
//
//go:embed *.sql
var Migrations embed.FS
