// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-cms-admin/models"
)

// AuthService authenticates administrators and manages their session tokens.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)
	IssueToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken verifies a session token. Every failure is reported as
	// ErrInvalidSession.
	ParseToken(ctx context.Context, token string) (models.Session, error)
	// CurrentUser re-reads the account behind session.
	CurrentUser(ctx context.Context, session models.Session) (models.PublicUser, error)
	// EnsureBootstrapAdmin creates a super_admin account with the given
	// credentials unless an account with that email already exists.
	EnsureBootstrapAdmin(ctx context.Context, email, password string) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, request models.UserCreate) (models.User, error)
	UpdateUser(ctx context.Context, request models.UserUpdate) (models.User, error)
	// DeleteUser refuses to delete the account the session belongs to.
	DeleteUser(ctx context.Context, session models.Session, id int64) error
}

type RoleService interface {
	ListRoles(ctx context.Context) ([]models.Role, error)
	CreateRole(ctx context.Context, role models.Role) (models.Role, error)
	UpdateRole(ctx context.Context, role models.Role) (models.Role, error)
	DeleteRole(ctx context.Context, id int64) error
}

// SettingsService reads and writes the site-wide key-value settings.
type SettingsService interface {
	GetAll(ctx context.Context) (map[string]string, error)
	// SetMany upserts every entry in order. A failing key does not stop the
	// batch; all failures are returned joined.
	SetMany(ctx context.Context, settings models.SettingsUpdate) error
	// Site projects the well-known keys. Missing keys and read failures
	// yield empty fields.
	Site(ctx context.Context) models.SiteSettings
}

// ContentService manages one kind of display-ordered content.
type ContentService[T models.Content] interface {
	ListActive(ctx context.Context) ([]T, error)
	ListAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id int64, item T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// SubmissionService manages one kind of visitor submission.
type SubmissionService[T models.Submission] interface {
	Submit(ctx context.Context, item T) (T, error)
	List(ctx context.Context) ([]T, error)
	SetRead(ctx context.Context, id int64, isRead bool) (T, error)
	Delete(ctx context.Context, id int64) error
}

type DashboardService interface {
	Summary(ctx context.Context) (models.Dashboard, error)
}

type HealthService interface {
	Ping(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}
