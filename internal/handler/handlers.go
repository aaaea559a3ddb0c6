// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/handler/http"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/service"
	"github.com/MKhiriev/go-cms-admin/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, buildInfo, logger),
	}, nil
}
