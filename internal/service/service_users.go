// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/store"
	"github.com/MKhiriev/go-cms-admin/internal/utils"
	"github.com/MKhiriev/go-cms-admin/models"
)

type userService struct {
	userRepository store.UserRepository
	roleRepository store.RoleRepository

	passwordCost int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, roleRepository store.RoleRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		passwordCost:   cfg.PasswordCost,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// CreateUser hashes the password and stores a new account. The role must
// name an existing row of the roles table.
func (s *userService) CreateUser(ctx context.Context, request models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.ensureRoleExists(ctx, request.Role); err != nil {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(request.Password, s.passwordCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("password hashing failed")
		return models.User{}, err
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		Name:         request.Name,
		PasswordHash: hash,
		Role:         request.Role,
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// UpdateUser overwrites name, email and role of an account. The password is
// only replaced when the request carries a new one.
func (s *userService) UpdateUser(ctx context.Context, request models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.ensureRoleExists(ctx, request.Role); err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:    request.ID,
		Email: request.Email,
		Name:  request.Name,
		Role:  request.Role,
	}

	if request.Password != "" {
		hash, err := utils.HashPassword(request.Password, s.passwordCost)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("password hashing failed")
			return models.User{}, err
		}
		user.PasswordHash = hash
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Int64("id", request.ID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, session models.Session, id int64) error {
	if id == session.UserID {
		return ErrSelfDeletion
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.DeleteUser").Int64("id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

func (s *userService) ensureRoleExists(ctx context.Context, role string) error {
	_, err := s.roleRepository.FindRoleByName(ctx, role)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if err != nil {
		return fmt.Errorf("role lookup failed: %w", err)
	}

	return nil
}
