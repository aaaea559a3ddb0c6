// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	l := logger.Nop()
	repo := &userRepository{
		db:     newDB(conn, config.DriverPostgres, l),
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(int64(1), "admin@example.org", "Admin", "$2a$10$hash", models.RoleSuperAdmin, now, now)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO admin_users \(email,name,password_hash,role\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id`).
		WithArgs("admin@example.org", "Admin", "$2a$10$hash", models.RoleSuperAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT id, email, name, password_hash, role, created_at, updated_at FROM admin_users WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(userRows(now))

	created, err := repo.CreateUser(context.Background(), models.User{
		Email:        "admin@example.org",
		Name:         "Admin",
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleSuperAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "admin@example.org", created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO admin_users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "dup@example.org"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestCreateUser_UnknownRole(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO admin_users").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "x@example.org", Role: "ghost"})
	assert.ErrorIs(t, err, ErrReferenced)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	dbErr := errors.New("db network error")

	mock.ExpectQuery("INSERT INTO admin_users").WillReturnError(dbErr)

	_, err := repo.CreateUser(context.Background(), models.User{Email: "x@example.org"})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM admin_users WHERE email = \$1`).
		WithArgs("admin@example.org").
		WillReturnRows(userRows(now))

	user, err := repo.FindUserByEmail(context.Background(), "admin@example.org")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.Equal(t, models.RoleSuperAdmin, user.Role)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM admin_users WHERE email").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.org")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM admin_users WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.FindUserByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListUsers_OrderedByName(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM admin_users ORDER BY name ASC, id ASC`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(2), "a@example.org", "Alice", "h", models.RoleEditor, now, now).
			AddRow(int64(1), "b@example.org", "Bob", "h", models.RoleAdmin, now, now))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
}

func TestListUsers_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM admin_users").WillReturnError(errors.New("boom"))

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestUpdateUser_KeepsPasswordWhenEmpty(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectExec(`UPDATE admin_users SET name = \$1, email = \$2, role = \$3, updated_at = CURRENT_TIMESTAMP WHERE id = \$4`).
		WithArgs("Admin", "admin@example.org", models.RoleAdmin, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM admin_users WHERE id").
		WillReturnRows(userRows(now))

	_, err := repo.UpdateUser(context.Background(), models.User{
		ID: 1, Name: "Admin", Email: "admin@example.org", Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_SetsPassword(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectExec(`UPDATE admin_users SET .*updated_at = CURRENT_TIMESTAMP, password_hash = \$4 WHERE id = \$5`).
		WithArgs("Admin", "admin@example.org", models.RoleAdmin, "new-hash", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM admin_users WHERE id").
		WillReturnRows(userRows(now))

	_, err := repo.UpdateUser(context.Background(), models.User{
		ID: 1, Name: "Admin", Email: "admin@example.org", Role: models.RoleAdmin, PasswordHash: "new-hash",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE admin_users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateUser(context.Background(), models.User{ID: 99})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`DELETE FROM admin_users WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM admin_users WHERE id = \$1`).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteUser(context.Background(), 5))
	assert.ErrorIs(t, repo.DeleteUser(context.Background(), 6), ErrNotFound)
}
