// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/store"
	"github.com/MKhiriev/go-cms-admin/models"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	RoleService     RoleService
	SettingsService SettingsService

	HeroSlides  ContentService[models.HeroSlide]
	Programs    ContentService[models.Program]
	TeamMembers ContentService[models.TeamMember]
	Milestones  ContentService[models.Milestone]
	ImpactStats ContentService[models.ImpactStat]

	ContactSubmissions  SubmissionService[models.ContactSubmission]
	InterestSubmissions SubmissionService[models.InterestSubmission]

	DashboardService DashboardService
	HealthService    HealthService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg, logger.Named("auth")),
		UserService:     NewUserService(storages.UserRepository, storages.RoleRepository, cfg, logger.Named("users")),
		RoleService:     NewRoleService(storages.RoleRepository, logger.Named("roles")),
		SettingsService: NewSettingsService(storages.SettingsRepository, logger.Named("settings")),

		HeroSlides:  NewContentService(storages.HeroSlides, "hero slide", logger),
		Programs:    NewContentService(storages.Programs, "program", logger),
		TeamMembers: NewContentService(storages.TeamMembers, "team member", logger),
		Milestones:  NewContentService(storages.Milestones, "milestone", logger),
		ImpactStats: NewContentService(storages.ImpactStats, "impact stat", logger),

		ContactSubmissions:  NewSubmissionService(storages.ContactSubmissions, "contact submission", logger.Named("submissions")),
		InterestSubmissions: NewSubmissionService(storages.InterestSubmissions, "interest submission", logger.Named("submissions")),

		DashboardService: NewDashboardService(storages, logger),
		HealthService:    NewHealthService(storages.DB),
		AppInfoService:   appInfoService,
	}, nil
}
