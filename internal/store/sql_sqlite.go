// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens a go-sqlite3 pool for cfg.DSN with foreign key
// enforcement switched on, and pings it. In-memory databases are limited to
// a single connection so every query sees the same database.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(config.DriverSQLite, sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening connection to DB")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if strings.Contains(cfg.DSN, ":memory:") || strings.Contains(cfg.DSN, "mode=memory") {
		maxOpen = 1
	}
	conn.SetMaxOpenConns(maxOpen)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, config.DriverSQLite, log), nil
}

// sqliteDSN appends the foreign key pragma unless the DSN already sets it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}

	return dsn + "?_foreign_keys=on"
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3 by
// inspecting the extended result code of a sqlite3.Error.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ErrAlreadyExists
	case sqlite3.ErrConstraintForeignKey:
		return ErrReferenced
	default:
		return nil
	}
}
