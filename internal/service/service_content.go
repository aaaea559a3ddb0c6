// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/store"
	"github.com/MKhiriev/go-cms-admin/models"
)

// contentService is shared by every content kind; kind only labels logs
// and errors.
type contentService[T models.Content] struct {
	repository store.ContentRepository[T]
	kind       string

	logger *logger.Logger
}

func NewContentService[T models.Content](repository store.ContentRepository[T], kind string, logger *logger.Logger) ContentService[T] {
	return &contentService[T]{
		repository: repository,
		kind:       kind,
		logger:     logger,
	}
}

// ListActive returns what the public site shows.
func (s *contentService[T]) ListActive(ctx context.Context) ([]T, error) {
	items, err := s.repository.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing active %s failed: %w", s.kind, err)
	}

	return items, nil
}

func (s *contentService[T]) ListAll(ctx context.Context) ([]T, error) {
	items, err := s.repository.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing %s failed: %w", s.kind, err)
	}

	return items, nil
}

func (s *contentService[T]) Create(ctx context.Context, item T) (T, error) {
	created, err := s.repository.Create(ctx, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contentService.Create").Str("kind", s.kind).Msg("content creation ended with error")
		return created, fmt.Errorf("creating %s failed: %w", s.kind, err)
	}

	return created, nil
}

func (s *contentService[T]) Update(ctx context.Context, id int64, item T) (T, error) {
	updated, err := s.repository.Update(ctx, id, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contentService.Update").Str("kind", s.kind).Int64("id", id).Msg("content update ended with error")
		return updated, fmt.Errorf("updating %s failed: %w", s.kind, err)
	}

	return updated, nil
}

func (s *contentService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contentService.Delete").Str("kind", s.kind).Int64("id", id).Msg("content deletion ended with error")
		return fmt.Errorf("deleting %s failed: %w", s.kind, err)
	}

	return nil
}
