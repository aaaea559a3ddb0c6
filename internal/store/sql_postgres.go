// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewConnectPostgres opens a pgx backed pool for cfg.DSN and pings it.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(config.DriverPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxOpenConns)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, config.DriverPostgres, log), nil
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL by
// inspecting the SQLSTATE of a *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
//   - 23505 unique_violation      → [ErrAlreadyExists]
//   - 23503 foreign_key_violation → [ErrReferenced]
//   - P0002 no_data_found         → [ErrNotFound]
func (c *PostgresErrorClassifier) Classify(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return ErrReferenced
	case pgerrcode.NoDataFound:
		return ErrNotFound
	default:
		return nil
	}
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
