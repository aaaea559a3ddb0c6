// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/service"
	"github.com/MKhiriev/go-cms-admin/internal/validators"
	"github.com/MKhiriev/go-cms-admin/models"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	loginLimiter *LoginLimiter
	metrics      *metrics

	cookieSecure      bool
	trustForwardedFor bool
	requestTimeout    time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		validator:         validators.NewRequestValidator(),
		loginLimiter:      NewLoginLimiter(cfg.App.LoginRatePerMinute, cfg.App.LoginRateBurst),
		metrics:           newMetrics(buildInfo),
		cookieSecure:      cfg.App.CookieSecure,
		trustForwardedFor: cfg.App.TrustForwardedFor,
		requestTimeout:    cfg.Server.RequestTimeout,
		logger:            logger,
	}
}

// LoginLimiter exposes the login throttle so a background worker can evict
// idle buckets.
func (h *Handler) LoginLimiter() *LoginLimiter {
	return h.loginLimiter
}
