// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-cms-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists administrative accounts in the admin_users table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser overwrites name, email and role. An empty PasswordHash keeps
	// the stored hash.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// RoleRepository persists the managed set of roles.
type RoleRepository interface {
	CreateRole(ctx context.Context, role models.Role) (models.Role, error)
	FindRoleByID(ctx context.Context, id int64) (models.Role, error)
	FindRoleByName(ctx context.Context, name string) (models.Role, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	UpdateRole(ctx context.Context, role models.Role) (models.Role, error)
	DeleteRole(ctx context.Context, id int64) error
}

// SettingsRepository persists site_settings rows.
type SettingsRepository interface {
	// GetAll returns every setting ordered by key.
	GetAll(ctx context.Context) ([]models.Setting, error)
	// Upsert inserts the key or overwrites its value and timestamp. Each call
	// is an independent statement.
	Upsert(ctx context.Context, key, value string) error
}

// ContentRepository persists one kind of display-ordered content.
type ContentRepository[T models.Content] interface {
	// List returns rows ordered by display_order. With activeOnly set,
	// inactive rows are skipped.
	List(ctx context.Context, activeOnly bool) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id int64, item T) (T, error)
	Delete(ctx context.Context, id int64) error
	CountActive(ctx context.Context) (int64, error)
}

// SubmissionRepository persists one kind of visitor submission.
type SubmissionRepository[T models.Submission] interface {
	Create(ctx context.Context, item T) (T, error)
	// List returns submissions newest first. A zero limit means no limit.
	List(ctx context.Context, limit uint64) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	SetRead(ctx context.Context, id int64, isRead bool) (T, error)
	Delete(ctx context.Context, id int64) error
	CountUnread(ctx context.Context) (int64, error)
}
