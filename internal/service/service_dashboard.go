// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/store"
	"github.com/MKhiriev/go-cms-admin/models"
	"golang.org/x/sync/errgroup"
)

// recentMessagesLimit is how many contact messages the dashboard previews.
const recentMessagesLimit = 5

type dashboardService struct {
	storages *store.Storages

	logger *logger.Logger
}

func NewDashboardService(storages *store.Storages, logger *logger.Logger) DashboardService {
	return &dashboardService{
		storages: storages,
		logger:   logger,
	}
}

// Summary counts active content and unread submissions and loads the most
// recent contact messages. The queries run concurrently; the first failure
// cancels the rest.
func (s *dashboardService) Summary(ctx context.Context) (models.Dashboard, error) {
	var (
		dashboard models.Dashboard
		stats     = &dashboard.Stats
	)

	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&stats.HeroSlides, s.storages.HeroSlides.CountActive)
	count(&stats.Programs, s.storages.Programs.CountActive)
	count(&stats.TeamMembers, s.storages.TeamMembers.CountActive)
	count(&stats.Milestones, s.storages.Milestones.CountActive)
	count(&stats.ImpactStats, s.storages.ImpactStats.CountActive)
	count(&stats.UnreadMessages, s.storages.ContactSubmissions.CountUnread)
	count(&stats.UnreadInterests, s.storages.InterestSubmissions.CountUnread)

	g.Go(func() error {
		recent, err := s.storages.ContactSubmissions.List(gctx, recentMessagesLimit)
		if err != nil {
			return err
		}
		dashboard.RecentMessages = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dashboardService.Summary").Msg("building dashboard failed")
		return models.Dashboard{}, fmt.Errorf("building dashboard failed: %w", err)
	}

	if dashboard.RecentMessages == nil {
		dashboard.RecentMessages = []models.ContactSubmission{}
	}

	return dashboard, nil
}
