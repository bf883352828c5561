package main

import (
	"io/fs"
	"strings"
	"testing"

	"bookquery/db"
)

func TestEmbeddedMigrations_HaveGooseDirectives(t *testing.T) {
	fsys, dir := migrationsSource()
	if fsys == nil {
		t.Skip("MIGRATIONS_DIR points at an external directory")
	}

	entries, err := fs.ReadDir(db.Migrations, dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}
	if len(entries) == 0 {
		t.Fatal("no embedded migrations")
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := fs.ReadFile(db.Migrations, dir+"/"+e.Name())
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", e.Name(), err)
		}
		s := string(b)
		if !strings.Contains(s, "-- +goose Up") {
			t.Fatalf("%s missing '-- +goose Up'", e.Name())
		}
		if !strings.Contains(s, "-- +goose Down") {
			t.Fatalf("%s missing '-- +goose Down'", e.Name())
		}
	}
}
