// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/store"
	"github.com/MKhiriev/go-cms-admin/models"
)

type settingsService struct {
	settingsRepository store.SettingsRepository

	logger *logger.Logger
}

func NewSettingsService(settingsRepository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		logger:             logger,
	}
}

// GetAll folds every stored setting into a flat key to value mapping.
func (s *settingsService) GetAll(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingsRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading settings failed: %w", err)
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}

	return result, nil
}

// SetMany upserts the settings one statement at a time in the order given.
// Writes that succeeded before a failure stay applied.
func (s *settingsService) SetMany(ctx context.Context, settings models.SettingsUpdate) error {
	log := logger.FromContext(ctx)

	var errs []error
	for _, setting := range settings {
		if err := s.settingsRepository.Upsert(ctx, setting.Key, setting.Value); err != nil {
			log.Err(err).Str("func", "*settingsService.SetMany").Str("key", setting.Key).Msg("setting upsert failed")
			errs = append(errs, fmt.Errorf("setting %q: %w", setting.Key, err))
		}
	}

	return errors.Join(errs...)
}

func (s *settingsService) Site(ctx context.Context) models.SiteSettings {
	settings, err := s.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*settingsService.Site").Msg("falling back to empty site settings")
		settings = map[string]string{}
	}

	return models.NewSiteSettings(settings)
}
