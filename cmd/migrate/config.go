package main

import (
	"io/fs"
	"os"

	"bookquery/db"
)

const sourceMigrationsDir = "db/migrations"

// migrationsSource returns the filesystem goose reads from. MIGRATIONS_DIR switches
// from the embedded files to a directory on disk.
func migrationsSource() (fs.FS, string) {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return nil, v
	}
	return db.Migrations, db.MigrationsDir
}

// createDir is where new migration files are written.
func createDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return sourceMigrationsDir
}
