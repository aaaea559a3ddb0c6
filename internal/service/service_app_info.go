// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetVersionInfo combines the configured version with the linker-injected
// build metadata.
func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionInfo {
	return models.VersionInfo{
		Version:     s.appVersion,
		BuildDate:   s.buildInfo.BuildDate(),
		BuildCommit: s.buildInfo.BuildCommit(),
	}
}
