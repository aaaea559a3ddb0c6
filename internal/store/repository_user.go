// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/models"
)

var userColumns = []string{"id", "email", "name", "password_hash", "role", "created_at", "updated_at"}

func scanUser(u *models.User) []any {
	return []any{&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt}
}

// userRepository is the SQL implementation of [UserRepository] over the
// admin_users table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the stored row.
// A duplicate email is reported as [ErrAlreadyExists], a role that does not
// exist as [ErrReferenced].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := r.db.builder.
		Insert(user.TableName()).
		Columns("email", "name", "password_hash", "role").
		Values(user.Email, user.Name, user.PasswordHash, user.Role)

	id, err := insertReturningID(ctx, r.db, query, "*userRepository.CreateUser")
	if err != nil {
		return models.User{}, err
	}

	return r.FindUserByID(ctx, id)
}

// FindUserByEmail returns the account with the given login email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := r.selectUsers().Where(sq.Eq{"email": email})
	return selectOne(ctx, r.db, query, scanUser, "*userRepository.FindUserByEmail")
}

// FindUserByID returns the account with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	query := r.selectUsers().Where(sq.Eq{"id": id})
	return selectOne(ctx, r.db, query, scanUser, "*userRepository.FindUserByID")
}

// ListUsers returns every account ordered by name.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query := r.selectUsers().OrderBy("name ASC", "id ASC")
	return selectAll(ctx, r.db, query, scanUser, "*userRepository.ListUsers")
}

// UpdateUser implements [UserRepository].
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	query := r.db.builder.
		Update(user.TableName()).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("role", user.Role).
		Set("updated_at", currentTimestamp()).
		Where(sq.Eq{"id": user.ID})
	if user.PasswordHash != "" {
		query = query.Set("password_hash", user.PasswordHash)
	}

	if err := execAffectingOne(ctx, r.db, query, "*userRepository.UpdateUser"); err != nil {
		return models.User{}, err
	}

	return r.FindUserByID(ctx, user.ID)
}

// DeleteUser removes the account with the given id.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	query := r.db.builder.Delete(models.User{}.TableName()).Where(sq.Eq{"id": id})
	return execAffectingOne(ctx, r.db, query, "*userRepository.DeleteUser")
}

func (r *userRepository) selectUsers() sq.SelectBuilder {
	return r.db.builder.Select(userColumns...).From(models.User{}.TableName())
}
