// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/models"
)

// contentTable describes how one content kind maps onto its table.
type contentTable[T models.Content] struct {
	name string
	// columns are the writable columns, in the order returned by values.
	columns []string
	values  func(item *T) []any
	// scan returns destinations for id, columns..., created_at, updated_at.
	scan scanFunc[T]
}

func (t contentTable[T]) selectColumns() []string {
	cols := make([]string, 0, len(t.columns)+3)
	cols = append(cols, "id")
	cols = append(cols, t.columns...)
	return append(cols, "created_at", "updated_at")
}

var heroSlidesTable = contentTable[models.HeroSlide]{
	name:    models.HeroSlide{}.TableName(),
	columns: []string{"title", "subtitle", "image_url", "cta_text", "cta_link", "display_order", "is_active"},
	values: func(s *models.HeroSlide) []any {
		return []any{s.Title, s.Subtitle, s.ImageURL, s.CTAText, s.CTALink, s.DisplayOrder, s.IsActive}
	},
	scan: func(s *models.HeroSlide) []any {
		return []any{&s.ID, &s.Title, &s.Subtitle, &s.ImageURL, &s.CTAText, &s.CTALink, &s.DisplayOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt}
	},
}

var programsTable = contentTable[models.Program]{
	name:    models.Program{}.TableName(),
	columns: []string{"title", "description", "long_description", "icon", "image_url", "display_order", "is_active"},
	values: func(p *models.Program) []any {
		return []any{p.Title, p.Description, p.LongDescription, p.Icon, p.ImageURL, p.DisplayOrder, p.IsActive}
	},
	scan: func(p *models.Program) []any {
		return []any{&p.ID, &p.Title, &p.Description, &p.LongDescription, &p.Icon, &p.ImageURL, &p.DisplayOrder, &p.IsActive, &p.CreatedAt, &p.UpdatedAt}
	},
}

var teamMembersTable = contentTable[models.TeamMember]{
	name:    models.TeamMember{}.TableName(),
	columns: []string{"name", "role", "bio", "image_url", "email", "linkedin_url", "display_order", "is_active"},
	values: func(m *models.TeamMember) []any {
		return []any{m.Name, m.Role, m.Bio, m.ImageURL, m.Email, m.LinkedInURL, m.DisplayOrder, m.IsActive}
	},
	scan: func(m *models.TeamMember) []any {
		return []any{&m.ID, &m.Name, &m.Role, &m.Bio, &m.ImageURL, &m.Email, &m.LinkedInURL, &m.DisplayOrder, &m.IsActive, &m.CreatedAt, &m.UpdatedAt}
	},
}

var milestonesTable = contentTable[models.Milestone]{
	name:    models.Milestone{}.TableName(),
	columns: []string{"year", "title", "description", "display_order", "is_active"},
	values: func(m *models.Milestone) []any {
		return []any{m.Year, m.Title, m.Description, m.DisplayOrder, m.IsActive}
	},
	scan: func(m *models.Milestone) []any {
		return []any{&m.ID, &m.Year, &m.Title, &m.Description, &m.DisplayOrder, &m.IsActive, &m.CreatedAt, &m.UpdatedAt}
	},
}

var impactStatsTable = contentTable[models.ImpactStat]{
	name:    models.ImpactStat{}.TableName(),
	columns: []string{"label", "value", "suffix", "icon", "display_order", "is_active"},
	values: func(s *models.ImpactStat) []any {
		return []any{s.Label, s.Value, s.Suffix, s.Icon, s.DisplayOrder, s.IsActive}
	},
	scan: func(s *models.ImpactStat) []any {
		return []any{&s.ID, &s.Label, &s.Value, &s.Suffix, &s.Icon, &s.DisplayOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt}
	},
}

// contentRepository is the SQL implementation of [ContentRepository] shared
// by every content kind.
type contentRepository[T models.Content] struct {
	logger *logger.Logger
	db     *DB
	table  contentTable[T]
}

func newContentRepository[T models.Content](db *DB, table contentTable[T], logger *logger.Logger) ContentRepository[T] {
	logger.Debug().Str("table", table.name).Msg("creating content repository")
	return &contentRepository[T]{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// NewHeroSlideRepository constructs the hero_slides repository.
func NewHeroSlideRepository(db *DB, logger *logger.Logger) ContentRepository[models.HeroSlide] {
	return newContentRepository(db, heroSlidesTable, logger)
}

// NewProgramRepository constructs the programs repository.
func NewProgramRepository(db *DB, logger *logger.Logger) ContentRepository[models.Program] {
	return newContentRepository(db, programsTable, logger)
}

// NewTeamMemberRepository constructs the team_members repository.
func NewTeamMemberRepository(db *DB, logger *logger.Logger) ContentRepository[models.TeamMember] {
	return newContentRepository(db, teamMembersTable, logger)
}

// NewMilestoneRepository constructs the milestones repository.
func NewMilestoneRepository(db *DB, logger *logger.Logger) ContentRepository[models.Milestone] {
	return newContentRepository(db, milestonesTable, logger)
}

// NewImpactStatRepository constructs the impact_stats repository.
func NewImpactStatRepository(db *DB, logger *logger.Logger) ContentRepository[models.ImpactStat] {
	return newContentRepository(db, impactStatsTable, logger)
}

func (r *contentRepository[T]) List(ctx context.Context, activeOnly bool) ([]T, error) {
	query := r.selectRows().OrderBy("display_order ASC", "id ASC")
	if activeOnly {
		query = query.Where(sq.Eq{"is_active": true})
	}

	return selectAll(ctx, r.db, query, r.table.scan, "*contentRepository.List")
}

func (r *contentRepository[T]) Get(ctx context.Context, id int64) (T, error) {
	query := r.selectRows().Where(sq.Eq{"id": id})
	return selectOne(ctx, r.db, query, r.table.scan, "*contentRepository.Get")
}

func (r *contentRepository[T]) Create(ctx context.Context, item T) (T, error) {
	query := r.db.builder.
		Insert(r.table.name).
		Columns(r.table.columns...).
		Values(r.table.values(&item)...)

	id, err := insertReturningID(ctx, r.db, query, "*contentRepository.Create")
	if err != nil {
		var zero T
		return zero, err
	}

	return r.Get(ctx, id)
}

// Update overwrites every writable column of row id and returns the
// refreshed row.
func (r *contentRepository[T]) Update(ctx context.Context, id int64, item T) (T, error) {
	values := r.table.values(&item)
	query := r.db.builder.Update(r.table.name)
	for i, column := range r.table.columns {
		query = query.Set(column, values[i])
	}
	query = query.Set("updated_at", currentTimestamp()).Where(sq.Eq{"id": id})

	if err := execAffectingOne(ctx, r.db, query, "*contentRepository.Update"); err != nil {
		var zero T
		return zero, err
	}

	return r.Get(ctx, id)
}

func (r *contentRepository[T]) Delete(ctx context.Context, id int64) error {
	query := r.db.builder.Delete(r.table.name).Where(sq.Eq{"id": id})
	return execAffectingOne(ctx, r.db, query, "*contentRepository.Delete")
}

func (r *contentRepository[T]) CountActive(ctx context.Context) (int64, error) {
	query := r.db.builder.
		Select("COUNT(*)").
		From(r.table.name).
		Where(sq.Eq{"is_active": true})

	return count(ctx, r.db, query, "*contentRepository.CountActive")
}

func (r *contentRepository[T]) selectRows() sq.SelectBuilder {
	return r.db.builder.Select(r.table.selectColumns()...).From(r.table.name)
}
