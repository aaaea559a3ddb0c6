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

type submissionService[T models.Submission] struct {
	repository store.SubmissionRepository[T]
	kind       string

	logger *logger.Logger
}

func NewSubmissionService[T models.Submission](repository store.SubmissionRepository[T], kind string, logger *logger.Logger) SubmissionService[T] {
	return &submissionService[T]{
		repository: repository,
		kind:       kind,
		logger:     logger,
	}
}

// Submit stores a visitor submission. New submissions start unread.
func (s *submissionService[T]) Submit(ctx context.Context, item T) (T, error) {
	created, err := s.repository.Create(ctx, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*submissionService.Submit").Str("kind", s.kind).Msg("storing submission failed")
		return created, fmt.Errorf("storing %s failed: %w", s.kind, err)
	}

	s.logger.Info().Str("kind", s.kind).Msg("new submission received")
	return created, nil
}

// List returns every submission, newest first.
func (s *submissionService[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repository.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("listing %s failed: %w", s.kind, err)
	}

	return items, nil
}

func (s *submissionService[T]) SetRead(ctx context.Context, id int64, isRead bool) (T, error) {
	updated, err := s.repository.SetRead(ctx, id, isRead)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*submissionService.SetRead").Str("kind", s.kind).Int64("id", id).Msg("read status update failed")
		return updated, fmt.Errorf("updating %s failed: %w", s.kind, err)
	}

	return updated, nil
}

func (s *submissionService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*submissionService.Delete").Str("kind", s.kind).Int64("id", id).Msg("submission deletion failed")
		return fmt.Errorf("deleting %s failed: %w", s.kind, err)
	}

	return nil
}
