// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Driver errors are translated into these by the connection's
// [ErrorClassificator]. Callers should use [errors.Is] to match them.
var (
	// ErrNotFound is returned when a lookup, update or delete targets a row
	// (by id, email or name) that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when a write violates a uniqueness
	// constraint, e.g. a duplicate user email or role name.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrReferenced is returned when a delete is refused because other rows
	// still point at the target, e.g. a role that users are assigned to.
	ErrReferenced = errors.New("record is referenced by other records")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown
	// database/sql driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with the
	// query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
