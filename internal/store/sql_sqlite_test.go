// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStorages opens a fresh migrated in-memory database.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, config.DB{
		Driver:       config.DriverSQLite,
		DSN:          "file::memory:",
		MaxOpenConns: 4,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return NewStorages(db, logger.Nop())
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "cms.db?_foreign_keys=on", sqliteDSN("cms.db"))
	assert.Equal(t, "file:cms.db?cache=shared&_foreign_keys=on", sqliteDSN("file:cms.db?cache=shared"))
	assert.Equal(t, "cms.db?_foreign_keys=off", sqliteDSN("cms.db?_foreign_keys=off"))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.ErrorIs(t, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}), ErrAlreadyExists)
	assert.ErrorIs(t, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}), ErrReferenced)
	assert.NoError(t, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.NoError(t, c.Classify(errors.New("plain")))
}

func TestSQLite_UserLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created, err := s.UserRepository.CreateUser(ctx, models.User{
		Email: "admin@example.org", Name: "Admin", PasswordHash: "hash", Role: models.RoleSuperAdmin,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = s.UserRepository.CreateUser(ctx, models.User{
		Email: "admin@example.org", Name: "Again", PasswordHash: "hash", Role: models.RoleEditor,
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = s.UserRepository.CreateUser(ctx, models.User{
		Email: "ghost@example.org", Name: "Ghost", PasswordHash: "hash", Role: "ghost",
	})
	assert.ErrorIs(t, err, ErrReferenced)

	found, err := s.UserRepository.FindUserByEmail(ctx, "admin@example.org")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	found.Name = "Renamed"
	found.PasswordHash = ""
	updated, err := s.UserRepository.UpdateUser(ctx, found)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "hash", updated.PasswordHash)

	require.NoError(t, s.UserRepository.DeleteUser(ctx, created.ID))
	_, err = s.UserRepository.FindUserByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.UserRepository.DeleteUser(ctx, created.ID), ErrNotFound)
}

func TestSQLite_Roles(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	roles, err := s.RoleRepository.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, models.RoleAdmin, roles[0].Name)

	role, err := s.RoleRepository.CreateRole(ctx, models.Role{Name: "author", Description: "Writes posts"})
	require.NoError(t, err)

	_, err = s.RoleRepository.CreateRole(ctx, models.Role{Name: "author"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	user, err := s.UserRepository.CreateUser(ctx, models.User{
		Email: "writer@example.org", Name: "Writer", PasswordHash: "hash", Role: "author",
	})
	require.NoError(t, err)

	// renaming follows into admin_users
	role.Name = "writer"
	_, err = s.RoleRepository.UpdateRole(ctx, role)
	require.NoError(t, err)
	user, err = s.UserRepository.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "writer", user.Role)

	assert.ErrorIs(t, s.RoleRepository.DeleteRole(ctx, role.ID), ErrReferenced)

	require.NoError(t, s.UserRepository.DeleteUser(ctx, user.ID))
	require.NoError(t, s.RoleRepository.DeleteRole(ctx, role.ID))

	_, err = s.RoleRepository.FindRoleByName(ctx, "writer")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_SettingsUpsert(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	require.NoError(t, s.SettingsRepository.Upsert(ctx, "a", "1"))
	require.NoError(t, s.SettingsRepository.Upsert(ctx, "b", "2"))
	require.NoError(t, s.SettingsRepository.Upsert(ctx, "a", "3"))

	settings, err := s.SettingsRepository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, "a", settings[0].Key)
	assert.Equal(t, "3", settings[0].Value)
	assert.Equal(t, "b", settings[1].Key)
	assert.Equal(t, "2", settings[1].Value)
}

func TestSQLite_Content(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	second, err := s.Programs.Create(ctx, models.Program{Title: "Second", DisplayOrder: 2, IsActive: true})
	require.NoError(t, err)
	_, err = s.Programs.Create(ctx, models.Program{Title: "Hidden", DisplayOrder: 0, IsActive: false})
	require.NoError(t, err)
	first, err := s.Programs.Create(ctx, models.Program{Title: "First", DisplayOrder: 1, IsActive: true})
	require.NoError(t, err)

	active, err := s.Programs.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "First", active[0].Title)
	assert.Equal(t, "Second", active[1].Title)

	all, err := s.Programs.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Hidden", all[0].Title)

	n, err := s.Programs.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	second.Title = "Second, edited"
	second.IsActive = false
	updated, err := s.Programs.Update(ctx, second.ID, second)
	require.NoError(t, err)
	assert.Equal(t, "Second, edited", updated.Title)
	assert.False(t, updated.IsActive)

	_, err = s.Programs.Update(ctx, 999, second)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Programs.Delete(ctx, first.ID))
	assert.ErrorIs(t, s.Programs.Delete(ctx, first.ID), ErrNotFound)

	stat, err := s.ImpactStats.Create(ctx, models.ImpactStat{Label: "Lives", Value: 12000, Suffix: "+", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(12000), stat.Value)
}

func TestSQLite_Submissions(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	older, err := s.ContactSubmissions.Create(ctx, models.ContactSubmission{Name: "A", Email: "a@x.org", Message: "hi"})
	require.NoError(t, err)
	assert.False(t, older.IsRead)
	newer, err := s.ContactSubmissions.Create(ctx, models.ContactSubmission{Name: "B", Email: "b@x.org", Message: "hello"})
	require.NoError(t, err)

	list, err := s.ContactSubmissions.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)

	recent, err := s.ContactSubmissions.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	read, err := s.ContactSubmissions.SetRead(ctx, older.ID, true)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	unread, err := s.ContactSubmissions.CountUnread(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	_, err = s.ContactSubmissions.SetRead(ctx, 999, true)
	assert.ErrorIs(t, err, ErrNotFound)

	interest, err := s.InterestSubmissions.Create(ctx, models.InterestSubmission{Name: "C", Email: "c@x.org", Interest: "volunteer"})
	require.NoError(t, err)
	assert.Equal(t, "volunteer", interest.Interest)
	require.NoError(t, s.InterestSubmissions.Delete(ctx, interest.ID))
}
