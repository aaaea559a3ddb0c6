// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/service"
	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fake services
// ─────────────────────────────────────────────

const (
	editorToken = "editor-token"
	rootToken   = "root-token"
)

var (
	editorSession = models.Session{UserID: 2, Email: "editor@example.org", Role: models.RoleEditor}
	rootSession   = models.Session{UserID: 1, Email: "root@example.org", Role: models.RoleSuperAdmin}
)

// mockAuthService implements service.AuthService. Unset function fields fall
// back to fixed sessions keyed by editorToken and rootToken.
type mockAuthService struct {
	loginFn       func(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)
	currentUserFn func(ctx context.Context, session models.Session) (models.PublicUser, error)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) IssueToken(context.Context, models.User) (models.Token, error) {
	return models.Token{}, nil
}

func (m *mockAuthService) ParseToken(_ context.Context, token string) (models.Session, error) {
	switch token {
	case editorToken:
		return editorSession, nil
	case rootToken:
		return rootSession, nil
	default:
		return models.Session{}, service.ErrInvalidSession
	}
}

func (m *mockAuthService) CurrentUser(ctx context.Context, session models.Session) (models.PublicUser, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx, session)
	}
	return models.PublicUser{ID: session.UserID, Email: session.Email, Role: session.Role}, nil
}

func (m *mockAuthService) EnsureBootstrapAdmin(context.Context, string, string) error {
	return nil
}

type mockAppInfoService struct{}

func (mockAppInfoService) GetAppVersion(context.Context) string { return "1.0.0" }

func (mockAppInfoService) GetVersionInfo(context.Context) models.VersionInfo {
	return models.VersionInfo{Version: "1.0.0", BuildDate: "2026-01-01", BuildCommit: "abc"}
}

type mockSettingsService struct {
	all    map[string]string
	err    error
	setErr error
	got    models.SettingsUpdate
}

func (m *mockSettingsService) GetAll(context.Context) (map[string]string, error) {
	return m.all, m.err
}

func (m *mockSettingsService) SetMany(_ context.Context, settings models.SettingsUpdate) error {
	m.got = settings
	return m.setErr
}

func (m *mockSettingsService) Site(context.Context) models.SiteSettings {
	return models.NewSiteSettings(m.all)
}

type mockUserService struct {
	created models.UserCreate
}

func (m *mockUserService) ListUsers(context.Context) ([]models.User, error) {
	return []models.User{{ID: 1, Email: "root@example.org", Role: models.RoleSuperAdmin, PasswordHash: "secret-hash"}}, nil
}

func (m *mockUserService) CreateUser(_ context.Context, request models.UserCreate) (models.User, error) {
	m.created = request
	return models.User{ID: 5, Email: request.Email, Name: request.Name, Role: request.Role}, nil
}

func (m *mockUserService) UpdateUser(_ context.Context, request models.UserUpdate) (models.User, error) {
	return models.User{ID: request.ID, Email: request.Email, Name: request.Name, Role: request.Role}, nil
}

func (m *mockUserService) DeleteUser(_ context.Context, session models.Session, id int64) error {
	if session.UserID == id {
		return service.ErrSelfDeletion
	}
	return nil
}

type mockHealthService struct {
	err error
}

func (m mockHealthService) Ping(context.Context) error { return m.err }

// mockContentService records what reached the service and returns canned
// results.
type mockContentService[T models.Content] struct {
	items   []T
	err     error
	created T
	updated struct {
		id   int64
		item T
	}
}

func (m *mockContentService[T]) ListActive(context.Context) ([]T, error) { return m.items, m.err }
func (m *mockContentService[T]) ListAll(context.Context) ([]T, error)    { return m.items, m.err }

func (m *mockContentService[T]) Create(_ context.Context, item T) (T, error) {
	m.created = item
	return item, m.err
}

func (m *mockContentService[T]) Update(_ context.Context, id int64, item T) (T, error) {
	m.updated.id, m.updated.item = id, item
	return item, m.err
}

func (m *mockContentService[T]) Delete(context.Context, int64) error { return m.err }

type mockSubmissionService[T models.Submission] struct {
	items     []T
	err       error
	submitted T
	readID    int64
	readValue bool
}

func (m *mockSubmissionService[T]) Submit(_ context.Context, item T) (T, error) {
	m.submitted = item
	return item, m.err
}

func (m *mockSubmissionService[T]) List(context.Context) ([]T, error) { return m.items, m.err }

func (m *mockSubmissionService[T]) SetRead(_ context.Context, id int64, isRead bool) (T, error) {
	m.readID, m.readValue = id, isRead
	var zero T
	return zero, m.err
}

func (m *mockSubmissionService[T]) Delete(context.Context, int64) error { return m.err }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			LoginRatePerMinute: 60,
			LoginRateBurst:     10,
		},
		Server: config.Server{HTTPAddress: ":8080"},
	}
}

// newTestServices returns a Services value where every dependency is a fake.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:         &mockAuthService{},
		UserService:         &mockUserService{},
		SettingsService:     &mockSettingsService{all: map[string]string{}},
		HeroSlides:          &mockContentService[models.HeroSlide]{},
		Programs:            &mockContentService[models.Program]{},
		TeamMembers:         &mockContentService[models.TeamMember]{},
		Milestones:          &mockContentService[models.Milestone]{},
		ImpactStats:         &mockContentService[models.ImpactStat]{},
		ContactSubmissions:  &mockSubmissionService[models.ContactSubmission]{},
		InterestSubmissions: &mockSubmissionService[models.InterestSubmission]{},
		HealthService:       mockHealthService{},
		AppInfoService:      mockAppInfoService{},
	}
}

func newTestHandler(t *testing.T, services *service.Services, cfg config.StructuredConfig) *Handler {
	t.Helper()
	return NewHandler(services, cfg, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"), logger.Nop())
}

// serve runs one request through the full router. token, when not empty, is
// sent as the session cookie.
func serve(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: models.SessionCookieName, Value: token})
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}
