// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
)

// scanFunc returns the scan destinations of one row, in select column order.
type scanFunc[T any] func(item *T) []any

// selectAll runs query and scans every row with dest.
func selectAll[T any](ctx context.Context, db *DB, query sq.SelectBuilder, dest scanFunc[T], funcName string) ([]T, error) {
	log := logger.FromContext(ctx)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, db.classify(err))
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		var item T
		if err := rows.Scan(dest(&item)...); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// selectOne runs query and scans exactly one row. A missing row is reported
// as [ErrNotFound].
func selectOne[T any](ctx context.Context, db *DB, query sq.SelectBuilder, dest scanFunc[T], funcName string) (T, error) {
	log := logger.FromContext(ctx)
	var item T

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return item, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := db.QueryRowContext(ctx, sqlStr, args...).Scan(dest(&item)...); err != nil {
		classified := db.classify(err)
		if errors.Is(classified, ErrNotFound) {
			return item, ErrNotFound
		}
		log.Err(err).Str("func", funcName).Msg("failed to scan row")
		return item, fmt.Errorf("%w: %w", ErrScanningRow, classified)
	}

	return item, nil
}

// insertReturningID runs query with a RETURNING id suffix and returns the new
// row id. Constraint violations come back classified.
func insertReturningID(ctx context.Context, db *DB, query sq.InsertBuilder, funcName string) (int64, error) {
	log := logger.FromContext(ctx)

	sqlStr, args, err := query.Suffix("RETURNING id").ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := db.QueryRowContext(ctx, sqlStr, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to insert row")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, db.classify(err))
	}

	return id, nil
}

// execAffectingOne runs a statement expected to touch exactly one row
// (UPDATE or DELETE by id). Zero affected rows is reported as [ErrNotFound].
func execAffectingOne(ctx context.Context, db *DB, query sq.Sqlizer, funcName string) error {
	log := logger.FromContext(ctx)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, db.classify(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// count runs a SELECT COUNT(*) query.
func count(ctx context.Context, db *DB, query sq.SelectBuilder, funcName string) (int64, error) {
	n, err := selectOne(ctx, db, query, func(n *int64) []any { return []any{n} }, funcName)
	if err != nil {
		return 0, err
	}

	return n, nil
}

func currentTimestamp() sq.Sqlizer {
	return sq.Expr("CURRENT_TIMESTAMP")
}
