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

type roleService struct {
	roleRepository store.RoleRepository

	logger *logger.Logger
}

func NewRoleService(roleRepository store.RoleRepository, logger *logger.Logger) RoleService {
	return &roleService{
		roleRepository: roleRepository,
		logger:         logger,
	}
}

func (s *roleService) ListRoles(ctx context.Context) ([]models.Role, error) {
	roles, err := s.roleRepository.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing roles failed: %w", err)
	}

	return roles, nil
}

func (s *roleService) CreateRole(ctx context.Context, role models.Role) (models.Role, error) {
	created, err := s.roleRepository.CreateRole(ctx, role)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roleService.CreateRole").Str("name", role.Name).Msg("role creation ended with error")
		return models.Role{}, fmt.Errorf("role creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateRole changes the name and description of a role. Renaming cascades
// to the accounts holding it. The protected role keeps its name but its
// description may change.
func (s *roleService) UpdateRole(ctx context.Context, role models.Role) (models.Role, error) {
	existing, err := s.roleRepository.FindRoleByID(ctx, role.ID)
	if err != nil {
		return models.Role{}, fmt.Errorf("role lookup failed: %w", err)
	}

	if existing.IsProtected() && existing.Name != role.Name {
		return models.Role{}, ErrProtectedRole
	}

	updated, err := s.roleRepository.UpdateRole(ctx, role)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roleService.UpdateRole").Int64("id", role.ID).Msg("role update ended with error")
		return models.Role{}, fmt.Errorf("role update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteRole removes a role no account holds. The protected role is never
// deleted.
func (s *roleService) DeleteRole(ctx context.Context, id int64) error {
	existing, err := s.roleRepository.FindRoleByID(ctx, id)
	if err != nil {
		return fmt.Errorf("role lookup failed: %w", err)
	}

	if existing.IsProtected() {
		return ErrProtectedRole
	}

	if err := s.roleRepository.DeleteRole(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roleService.DeleteRole").Int64("id", id).Msg("role deletion ended with error")
		return fmt.Errorf("role deletion ended with error: %w", err)
	}

	return nil
}
