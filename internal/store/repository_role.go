// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/models"
)

var roleColumns = []string{"id", "name", "description", "created_at"}

func scanRole(role *models.Role) []any {
	return []any{&role.ID, &role.Name, &role.Description, &role.CreatedAt}
}

type roleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoleRepository constructs a [RoleRepository] backed by db.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *roleRepository) CreateRole(ctx context.Context, role models.Role) (models.Role, error) {
	query := r.db.builder.
		Insert(role.TableName()).
		Columns("name", "description").
		Values(role.Name, role.Description)

	id, err := insertReturningID(ctx, r.db, query, "*roleRepository.CreateRole")
	if err != nil {
		return models.Role{}, err
	}

	return r.FindRoleByID(ctx, id)
}

func (r *roleRepository) FindRoleByID(ctx context.Context, id int64) (models.Role, error) {
	query := r.selectRoles().Where(sq.Eq{"id": id})
	return selectOne(ctx, r.db, query, scanRole, "*roleRepository.FindRoleByID")
}

func (r *roleRepository) FindRoleByName(ctx context.Context, name string) (models.Role, error) {
	query := r.selectRoles().Where(sq.Eq{"name": name})
	return selectOne(ctx, r.db, query, scanRole, "*roleRepository.FindRoleByName")
}

func (r *roleRepository) ListRoles(ctx context.Context) ([]models.Role, error) {
	query := r.selectRoles().OrderBy("name ASC")
	return selectAll(ctx, r.db, query, scanRole, "*roleRepository.ListRoles")
}

// UpdateRole renames and re-describes a role. Users assigned to the old name
// follow the rename through the foreign key's ON UPDATE CASCADE.
func (r *roleRepository) UpdateRole(ctx context.Context, role models.Role) (models.Role, error) {
	query := r.db.builder.
		Update(role.TableName()).
		Set("name", role.Name).
		Set("description", role.Description).
		Where(sq.Eq{"id": role.ID})

	if err := execAffectingOne(ctx, r.db, query, "*roleRepository.UpdateRole"); err != nil {
		return models.Role{}, err
	}

	return r.FindRoleByID(ctx, role.ID)
}

// DeleteRole removes a role. A role still assigned to users is reported as
// [ErrReferenced].
func (r *roleRepository) DeleteRole(ctx context.Context, id int64) error {
	query := r.db.builder.Delete(models.Role{}.TableName()).Where(sq.Eq{"id": id})
	return execAffectingOne(ctx, r.db, query, "*roleRepository.DeleteRole")
}

func (r *roleRepository) selectRoles() sq.SelectBuilder {
	return r.db.builder.Select(roleColumns...).From(models.Role{}.TableName())
}
