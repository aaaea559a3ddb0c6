// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/models"
)

// submissionTable describes how one submission kind maps onto its table.
// is_read and created_at are filled by column defaults on insert.
type submissionTable[T models.Submission] struct {
	name    string
	columns []string
	values  func(item *T) []any
	// scan returns destinations for id, columns..., is_read, created_at.
	scan scanFunc[T]
}

func (t submissionTable[T]) selectColumns() []string {
	cols := make([]string, 0, len(t.columns)+3)
	cols = append(cols, "id")
	cols = append(cols, t.columns...)
	return append(cols, "is_read", "created_at")
}

var contactSubmissionsTable = submissionTable[models.ContactSubmission]{
	name:    models.ContactSubmission{}.TableName(),
	columns: []string{"name", "email", "subject", "message"},
	values: func(s *models.ContactSubmission) []any {
		return []any{s.Name, s.Email, s.Subject, s.Message}
	},
	scan: func(s *models.ContactSubmission) []any {
		return []any{&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.IsRead, &s.CreatedAt}
	},
}

var interestSubmissionsTable = submissionTable[models.InterestSubmission]{
	name:    models.InterestSubmission{}.TableName(),
	columns: []string{"name", "email", "phone", "interest", "message"},
	values: func(s *models.InterestSubmission) []any {
		return []any{s.Name, s.Email, s.Phone, s.Interest, s.Message}
	},
	scan: func(s *models.InterestSubmission) []any {
		return []any{&s.ID, &s.Name, &s.Email, &s.Phone, &s.Interest, &s.Message, &s.IsRead, &s.CreatedAt}
	},
}

type submissionRepository[T models.Submission] struct {
	logger *logger.Logger
	db     *DB
	table  submissionTable[T]
}

func newSubmissionRepository[T models.Submission](db *DB, table submissionTable[T], logger *logger.Logger) SubmissionRepository[T] {
	logger.Debug().Str("table", table.name).Msg("creating submission repository")
	return &submissionRepository[T]{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// NewContactSubmissionRepository constructs the contact_submissions repository.
func NewContactSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository[models.ContactSubmission] {
	return newSubmissionRepository(db, contactSubmissionsTable, logger)
}

// NewInterestSubmissionRepository constructs the interest_submissions repository.
func NewInterestSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository[models.InterestSubmission] {
	return newSubmissionRepository(db, interestSubmissionsTable, logger)
}

func (r *submissionRepository[T]) Create(ctx context.Context, item T) (T, error) {
	query := r.db.builder.
		Insert(r.table.name).
		Columns(r.table.columns...).
		Values(r.table.values(&item)...)

	id, err := insertReturningID(ctx, r.db, query, "*submissionRepository.Create")
	if err != nil {
		var zero T
		return zero, err
	}

	return r.Get(ctx, id)
}

func (r *submissionRepository[T]) List(ctx context.Context, limit uint64) ([]T, error) {
	query := r.selectRows().OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	return selectAll(ctx, r.db, query, r.table.scan, "*submissionRepository.List")
}

func (r *submissionRepository[T]) Get(ctx context.Context, id int64) (T, error) {
	query := r.selectRows().Where(sq.Eq{"id": id})
	return selectOne(ctx, r.db, query, r.table.scan, "*submissionRepository.Get")
}

func (r *submissionRepository[T]) SetRead(ctx context.Context, id int64, isRead bool) (T, error) {
	query := r.db.builder.
		Update(r.table.name).
		Set("is_read", isRead).
		Where(sq.Eq{"id": id})

	if err := execAffectingOne(ctx, r.db, query, "*submissionRepository.SetRead"); err != nil {
		var zero T
		return zero, err
	}

	return r.Get(ctx, id)
}

func (r *submissionRepository[T]) Delete(ctx context.Context, id int64) error {
	query := r.db.builder.Delete(r.table.name).Where(sq.Eq{"id": id})
	return execAffectingOne(ctx, r.db, query, "*submissionRepository.Delete")
}

func (r *submissionRepository[T]) CountUnread(ctx context.Context) (int64, error) {
	query := r.db.builder.
		Select("COUNT(*)").
		From(r.table.name).
		Where(sq.Eq{"is_read": false})

	return count(ctx, r.db, query, "*submissionRepository.CountUnread")
}

func (r *submissionRepository[T]) selectRows() sq.SelectBuilder {
	return r.db.builder.Select(r.table.selectColumns()...).From(r.table.name)
}
