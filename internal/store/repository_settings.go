// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/models"
)

// upsertSettingSuffix turns the INSERT into an upsert keyed by setting_key.
// The syntax is shared by PostgreSQL and SQLite.
const upsertSettingSuffix = "ON CONFLICT (setting_key) DO UPDATE SET setting_value = excluded.setting_value, updated_at = CURRENT_TIMESTAMP"

type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] backed by db.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *settingsRepository) GetAll(ctx context.Context) ([]models.Setting, error) {
	query := r.db.builder.
		Select("setting_key", "setting_value", "updated_at").
		From(models.Setting{}.TableName()).
		OrderBy("setting_key ASC")

	return selectAll(ctx, r.db, query, func(s *models.Setting) []any {
		return []any{&s.Key, &s.Value, &s.UpdatedAt}
	}, "*settingsRepository.GetAll")
}

func (r *settingsRepository) Upsert(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	sqlStr, args, err := r.db.builder.
		Insert(models.Setting{}.TableName()).
		Columns("setting_key", "setting_value").
		Values(key, value).
		Suffix(upsertSettingSuffix).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.Upsert").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		log.Err(err).Str("func", "*settingsRepository.Upsert").Str("key", key).Msg("failed to upsert setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return nil
}
