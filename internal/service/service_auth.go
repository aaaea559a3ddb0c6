// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/store"
	"github.com/MKhiriev/go-cms-admin/internal/utils"
	"github.com/MKhiriev/go-cms-admin/models"
)

// bootstrapAdminName is the display name given to the account created by
// EnsureBootstrapAdmin.
const bootstrapAdminName = "Administrator"

// decoyPassword is hashed once and verified against when a login names an
// unknown email, so both failure paths pay the bcrypt cost.
const decoyPassword = "cms-admin-decoy-password"

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes kept by the UserRepository
// and issues stateless HMAC-SHA256 session tokens.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// passwordCost is the bcrypt work factor of the bootstrap account.
	passwordCost int

	// now is the clock used for the "iat" claim.
	now func() time.Time

	decoyOnce sync.Once
	decoyHash string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		passwordCost:   cfg.PasswordCost,
		now:            time.Now,
		logger:         logger,
	}
}

// Login authenticates an administrator by email and password.
//
// On success the public projection of the account is returned together with
// a freshly issued session token.
//
// Returns:
//   - ErrInvalidCredentials if no account has that email or the password
//     does not match. The two cases are indistinguishable to the caller.
//   - A wrapped storage error if the lookup itself fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrNotFound) {
		utils.VerifyPassword(ctx, credentials.Password, a.decoy())
		log.Info().Str("func", "*authService.Login").Msg("login attempt for unknown email")
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.LoginResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(ctx, credentials.Password, user.PasswordHash) {
		log.Info().Str("func", "*authService.Login").Int64("id", user.ID).Msg("wrong password")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	token, err := a.IssueToken(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("id", user.ID).Msg("issuing session token failed")
		return models.LoginResult{}, err
	}

	return models.LoginResult{User: user.Public(), Token: token}, nil
}

// decoy returns a bcrypt hash at the configured cost that no real password
// matches in practice.
func (a *authService) decoy() string {
	a.decoyOnce.Do(func() {
		hash, err := utils.HashPassword(decoyPassword, a.passwordCost)
		if err != nil {
			a.logger.Err(err).Str("func", "*authService.decoy").Msg("hashing decoy password failed")
			return
		}
		a.decoyHash = hash
	})
	return a.decoyHash
}

// IssueToken signs a session token carrying the user's id, email and role.
// The token expires after [models.SessionDuration].
func (a *authService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	session := models.Session{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	token, err := utils.GenerateSessionToken(session, a.tokenIssuer, a.now(), a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw session token.
//
// Signature mismatch, wrong algorithm, malformed input, wrong issuer and
// elapsed expiry are all normalised to ErrInvalidSession so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, token string) (models.Session, error) {
	session, err := utils.ValidateAndParseSessionToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("session token rejected")
		return models.Session{}, ErrInvalidSession
	}

	return session, nil
}

// CurrentUser loads the account a session was issued for. A deleted account
// yields store.ErrNotFound even though its token still verifies.
func (a *authService) CurrentUser(ctx context.Context, session models.Session) (models.PublicUser, error) {
	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*authService.CurrentUser").
			Int64("id", session.UserID).
			Msg("loading current user failed")
		return models.PublicUser{}, fmt.Errorf("loading current user failed: %w", err)
	}

	return user.Public(), nil
}

// EnsureBootstrapAdmin creates the first super_admin account. It is a no-op
// when email is empty or an account with that email already exists.
func (a *authService) EnsureBootstrapAdmin(ctx context.Context, email, password string) error {
	if email == "" {
		return nil
	}

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		a.logger.Debug().Str("email", email).Msg("bootstrap admin already exists")
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("bootstrap admin lookup failed: %w", err)
	}

	hash, err := utils.HashPassword(password, a.passwordCost)
	if err != nil {
		return fmt.Errorf("bootstrap admin password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		Name:         bootstrapAdminName,
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
	})
	if err != nil {
		return fmt.Errorf("bootstrap admin creation failed: %w", err)
	}

	a.logger.Info().Int64("id", user.ID).Str("email", email).Msg("bootstrap admin created")
	return nil
}

// RequireRole allows the call when session is present and its role is one of
// allowed. An empty allowed set admits nobody.
func RequireRole(session *models.Session, allowed ...string) error {
	if session == nil {
		return ErrUnauthorized
	}

	for _, role := range allowed {
		if session.Role == role {
			return nil
		}
	}

	return ErrUnauthorized
}
