// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded SQL schema, one directory per
// dialect, and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// dialects maps a database/sql driver name onto the goose dialect and the
// directory holding its migrations.
var dialects = map[string]struct {
	dialect goose.Dialect
	dir     string
}{
	"pgx":     {dialect: goose.DialectPostgres, dir: "postgres"},
	"sqlite3": {dialect: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies every pending migration for driver to db.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: no migrations for driver %q", driver)
	}

	fsys, err := fs.Sub(embedMigrations, d.dir)
	if err != nil {
		return fmt.Errorf("migration error reading embedded files: %w", err)
	}

	provider, err := goose.NewProvider(d.dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
