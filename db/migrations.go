// Package db embeds the PostgreSQL schema migrations.
package db

import "embed"

// Migrations holds the goose SQL files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations that goose reads.
const MigrationsDir = "migrations"
