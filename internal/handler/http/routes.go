// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.trustForwardedFor {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	s := h.services

	// operational
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.healthz)
		r.Method(http.MethodGet, "/metrics", h.metricsHandler())
		r.Get("/api/version", h.getServerVersion)
	})

	// public site
	router.Group(func(r chi.Router) {
		r.Get("/api/settings", h.publicSettings)
		r.Get("/api/settings/site", h.siteSettings)

		mountPublicContent(h, r, "/api/hero-slides", s.HeroSlides)
		mountPublicContent(h, r, "/api/programs", s.Programs)
		mountPublicContent(h, r, "/api/team-members", s.TeamMembers)
		mountPublicContent(h, r, "/api/milestones", s.Milestones)
		mountPublicContent(h, r, "/api/impact-stats", s.ImpactStats)

		mountPublicSubmission(h, r, "/api/contact-submissions", s.ContactSubmissions)
		mountPublicSubmission(h, r, "/api/interest-submissions", s.InterestSubmissions)
	})

	// session lifecycle
	router.Group(func(r chi.Router) {
		r.With(h.limitLogin).Post("/api/admin/auth/login", h.login)
		r.Post("/api/admin/auth/logout", h.logout)
		r.With(h.requireSession).Get("/api/admin/auth/me", h.me)
	})

	// any signed-in administrator
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/api/admin/dashboard", h.dashboard)
		r.Get("/api/admin/settings", h.adminSettings)
		r.Put("/api/admin/settings", h.updateSettings)

		mountAdminContent(h, r, "/api/admin/hero-slides", s.HeroSlides)
		mountAdminContent(h, r, "/api/admin/programs", s.Programs)
		mountAdminContent(h, r, "/api/admin/team-members", s.TeamMembers)
		mountAdminContent(h, r, "/api/admin/milestones", s.Milestones)
		mountAdminContent(h, r, "/api/admin/impact-stats", s.ImpactStats)

		mountAdminSubmission(h, r, "/api/admin/contact-submissions", s.ContactSubmissions)
		mountAdminSubmission(h, r, "/api/admin/interest-submissions", s.InterestSubmissions)
	})

	// super_admin only
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession, h.requireRole(models.RoleSuperAdmin))

		r.Get("/api/admin/users", h.listUsers)
		r.Post("/api/admin/users", h.createUser)
		r.Put("/api/admin/users/{id}", h.updateUser)
		r.Delete("/api/admin/users/{id}", h.deleteUser)

		r.Get("/api/admin/roles", h.listRoles)
		r.Post("/api/admin/roles", h.createRole)
		r.Put("/api/admin/roles/{id}", h.updateRole)
		r.Delete("/api/admin/roles/{id}", h.deleteRole)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
