// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/mock"
	"github.com/MKhiriev/go-cms-admin/internal/store"
	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// ContentService
// ─────────────────────────────────────────────

func TestContentService_ListActive_OnlyActiveRows(t *testing.T) {
	repo := mock.NewMockContentRepository[models.Program](gomock.NewController(t))
	svc := NewContentService[models.Program](repo, "program", logger.Nop())
	want := []models.Program{{ID: 1, Title: "Food", IsActive: true}}

	repo.EXPECT().List(gomock.Any(), true).Return(want, nil)

	got, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestContentService_ListAll_IncludesInactive(t *testing.T) {
	repo := mock.NewMockContentRepository[models.HeroSlide](gomock.NewController(t))
	svc := NewContentService[models.HeroSlide](repo, "hero slide", logger.Nop())

	repo.EXPECT().List(gomock.Any(), false).Return([]models.HeroSlide{{ID: 1}, {ID: 2, IsActive: true}}, nil)

	got, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestContentService_Update_NotFound(t *testing.T) {
	repo := mock.NewMockContentRepository[models.Milestone](gomock.NewController(t))
	svc := NewContentService[models.Milestone](repo, "milestone", logger.Nop())

	repo.EXPECT().Update(gomock.Any(), int64(9), gomock.Any()).Return(models.Milestone{}, store.ErrNotFound)

	_, err := svc.Update(context.Background(), 9, models.Milestone{Year: "2020", Title: "x"})

	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "milestone")
}

func TestContentService_CreateAndDelete(t *testing.T) {
	repo := mock.NewMockContentRepository[models.ImpactStat](gomock.NewController(t))
	svc := NewContentService[models.ImpactStat](repo, "impact stat", logger.Nop())
	stat := models.ImpactStat{Label: "Meals", Value: 1000, IsActive: true}

	repo.EXPECT().Create(gomock.Any(), stat).Return(models.ImpactStat{ID: 4, Label: "Meals", Value: 1000, IsActive: true}, nil)
	repo.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	created, err := svc.Create(context.Background(), stat)
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
}

// ─────────────────────────────────────────────
// SubmissionService
// ─────────────────────────────────────────────

func TestSubmissionService_List_NoLimit(t *testing.T) {
	repo := mock.NewMockSubmissionRepository[models.ContactSubmission](gomock.NewController(t))
	svc := NewSubmissionService[models.ContactSubmission](repo, "contact submission", logger.Nop())

	repo.EXPECT().List(gomock.Any(), uint64(0)).Return([]models.ContactSubmission{{ID: 2}, {ID: 1}}, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSubmissionService_Submit(t *testing.T) {
	repo := mock.NewMockSubmissionRepository[models.InterestSubmission](gomock.NewController(t))
	svc := NewSubmissionService[models.InterestSubmission](repo, "interest submission", logger.Nop())
	in := models.InterestSubmission{Name: "A", Email: "a@b.org", Interest: "volunteer"}

	repo.EXPECT().Create(gomock.Any(), in).Return(models.InterestSubmission{ID: 1, Name: "A", Email: "a@b.org", Interest: "volunteer"}, nil)

	got, err := svc.Submit(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.False(t, got.IsRead)
}

func TestSubmissionService_SetRead(t *testing.T) {
	repo := mock.NewMockSubmissionRepository[models.ContactSubmission](gomock.NewController(t))
	svc := NewSubmissionService[models.ContactSubmission](repo, "contact submission", logger.Nop())

	repo.EXPECT().SetRead(gomock.Any(), int64(3), true).Return(models.ContactSubmission{ID: 3, IsRead: true}, nil)
	repo.EXPECT().SetRead(gomock.Any(), int64(4), true).Return(models.ContactSubmission{}, store.ErrNotFound)

	got, err := svc.SetRead(context.Background(), 3, true)
	require.NoError(t, err)
	assert.True(t, got.IsRead)

	_, err = svc.SetRead(context.Background(), 4, true)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSubmissionService_Delete_Error(t *testing.T) {
	repo := mock.NewMockSubmissionRepository[models.ContactSubmission](gomock.NewController(t))
	svc := NewSubmissionService[models.ContactSubmission](repo, "contact submission", logger.Nop())

	repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(errStorage)

	require.ErrorIs(t, svc.Delete(context.Background(), 3), errStorage)
}

// ─────────────────────────────────────────────
// DashboardService
// ─────────────────────────────────────────────

type dashboardMocks struct {
	heroSlides  *mock.MockContentRepository[models.HeroSlide]
	programs    *mock.MockContentRepository[models.Program]
	teamMembers *mock.MockContentRepository[models.TeamMember]
	milestones  *mock.MockContentRepository[models.Milestone]
	impactStats *mock.MockContentRepository[models.ImpactStat]
	contacts    *mock.MockSubmissionRepository[models.ContactSubmission]
	interests   *mock.MockSubmissionRepository[models.InterestSubmission]
}

func newTestDashboardService(t *testing.T) (DashboardService, dashboardMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := dashboardMocks{
		heroSlides:  mock.NewMockContentRepository[models.HeroSlide](ctrl),
		programs:    mock.NewMockContentRepository[models.Program](ctrl),
		teamMembers: mock.NewMockContentRepository[models.TeamMember](ctrl),
		milestones:  mock.NewMockContentRepository[models.Milestone](ctrl),
		impactStats: mock.NewMockContentRepository[models.ImpactStat](ctrl),
		contacts:    mock.NewMockSubmissionRepository[models.ContactSubmission](ctrl),
		interests:   mock.NewMockSubmissionRepository[models.InterestSubmission](ctrl),
	}

	storages := &store.Storages{
		HeroSlides:          m.heroSlides,
		Programs:            m.programs,
		TeamMembers:         m.teamMembers,
		Milestones:          m.milestones,
		ImpactStats:         m.impactStats,
		ContactSubmissions:  m.contacts,
		InterestSubmissions: m.interests,
	}

	return NewDashboardService(storages, logger.Nop()), m
}

func TestDashboardService_Summary(t *testing.T) {
	svc, m := newTestDashboardService(t)
	recent := []models.ContactSubmission{{ID: 9, Name: "Z"}, {ID: 8, Name: "Y"}}

	m.heroSlides.EXPECT().CountActive(gomock.Any()).Return(int64(3), nil)
	m.programs.EXPECT().CountActive(gomock.Any()).Return(int64(4), nil)
	m.teamMembers.EXPECT().CountActive(gomock.Any()).Return(int64(5), nil)
	m.milestones.EXPECT().CountActive(gomock.Any()).Return(int64(6), nil)
	m.impactStats.EXPECT().CountActive(gomock.Any()).Return(int64(7), nil)
	m.contacts.EXPECT().CountUnread(gomock.Any()).Return(int64(2), nil)
	m.interests.EXPECT().CountUnread(gomock.Any()).Return(int64(1), nil)
	m.contacts.EXPECT().List(gomock.Any(), uint64(5)).Return(recent, nil)

	got, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{
		HeroSlides:      3,
		Programs:        4,
		TeamMembers:     5,
		Milestones:      6,
		ImpactStats:     7,
		UnreadMessages:  2,
		UnreadInterests: 1,
	}, got.Stats)
	assert.Equal(t, recent, got.RecentMessages)
}

func TestDashboardService_Summary_EmptyRecentIsNotNil(t *testing.T) {
	svc, m := newTestDashboardService(t)

	m.heroSlides.EXPECT().CountActive(gomock.Any()).Return(int64(0), nil)
	m.programs.EXPECT().CountActive(gomock.Any()).Return(int64(0), nil)
	m.teamMembers.EXPECT().CountActive(gomock.Any()).Return(int64(0), nil)
	m.milestones.EXPECT().CountActive(gomock.Any()).Return(int64(0), nil)
	m.impactStats.EXPECT().CountActive(gomock.Any()).Return(int64(0), nil)
	m.contacts.EXPECT().CountUnread(gomock.Any()).Return(int64(0), nil)
	m.interests.EXPECT().CountUnread(gomock.Any()).Return(int64(0), nil)
	m.contacts.EXPECT().List(gomock.Any(), uint64(5)).Return(nil, nil)

	got, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got.RecentMessages)
	assert.Empty(t, got.RecentMessages)
}

func TestDashboardService_Summary_FailureIsReported(t *testing.T) {
	svc, m := newTestDashboardService(t)

	// the first failure cancels the group; the other calls may or may not run
	m.heroSlides.EXPECT().CountActive(gomock.Any()).Return(int64(0), errStorage)
	m.programs.EXPECT().CountActive(gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.teamMembers.EXPECT().CountActive(gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.milestones.EXPECT().CountActive(gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.impactStats.EXPECT().CountActive(gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.contacts.EXPECT().CountUnread(gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.interests.EXPECT().CountUnread(gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.contacts.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := svc.Summary(context.Background())

	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// HealthService
// ─────────────────────────────────────────────

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthService_Ping(t *testing.T) {
	ok := NewHealthService(pingerFunc(func(context.Context) error { return nil }))
	require.NoError(t, ok.Ping(context.Background()))

	down := errors.New("connection refused")
	failing := NewHealthService(pingerFunc(func(context.Context) error { return down }))
	require.ErrorIs(t, failing.Ping(context.Background()), down)
}
