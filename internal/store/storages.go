// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/models"
)

// Storages groups every repository built on one [DB].
type Storages struct {
	DB *DB

	UserRepository     UserRepository
	RoleRepository     RoleRepository
	SettingsRepository SettingsRepository

	HeroSlides  ContentRepository[models.HeroSlide]
	Programs    ContentRepository[models.Program]
	TeamMembers ContentRepository[models.TeamMember]
	Milestones  ContentRepository[models.Milestone]
	ImpactStats ContentRepository[models.ImpactStat]

	ContactSubmissions  SubmissionRepository[models.ContactSubmission]
	InterestSubmissions SubmissionRepository[models.InterestSubmission]
}

// NewStorages constructs every repository over db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB: db,

		UserRepository:     NewUserRepository(db, logger),
		RoleRepository:     NewRoleRepository(db, logger),
		SettingsRepository: NewSettingsRepository(db, logger),

		HeroSlides:  NewHeroSlideRepository(db, logger),
		Programs:    NewProgramRepository(db, logger),
		TeamMembers: NewTeamMemberRepository(db, logger),
		Milestones:  NewMilestoneRepository(db, logger),
		ImpactStats: NewImpactStatRepository(db, logger),

		ContactSubmissions:  NewContactSubmissionRepository(db, logger),
		InterestSubmissions: NewInterestSubmissionRepository(db, logger),
	}
}
