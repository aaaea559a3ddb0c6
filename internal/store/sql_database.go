// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/migrations"
)

// ErrorClassificator translates driver specific errors into store sentinels.
type ErrorClassificator interface {
	// Classify returns the sentinel matching err, or nil when err carries no
	// domain meaning.
	Classify(err error) error
}

// DB is a database/sql pool bound to one driver. It carries a squirrel
// statement builder configured with the driver's placeholder format and the
// driver's error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a pool for cfg.Driver, applies pool limits and pings the
// database.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		driver:  driver,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}

	switch driver {
	case config.DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Driver returns the database/sql driver name the pool was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies all pending schema migrations for the pool's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// classify maps sql.ErrNoRows to [ErrNotFound] and lets the driver
// classifier tag constraint violations. Unclassified errors are returned
// unchanged.
func (db *DB) classify(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	if db.errorClassificator != nil {
		if sentinel := db.errorClassificator.Classify(err); sentinel != nil {
			return fmt.Errorf("%w: %w", sentinel, err)
		}
	}

	return err
}
