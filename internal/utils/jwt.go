// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every token that fails verification,
// whatever the underlying reason.
var ErrInvalidToken = errors.New("invalid session token")

// GenerateSessionToken creates an HMAC-SHA256 signed session token for the
// given identity.
//
// The token carries the identity claims (userId, email, role) next to the
// registered claims:
//   - Issuer    (iss): issuer
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus [models.SessionDuration]
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken(session, "go-cms-admin", time.Now(), "secret")
func GenerateSessionToken(session models.Session, issuer string, issuedAt time.Time, signKey string) (models.Token, error) {
	if issuer == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	expiresAt := issuedAt.Add(models.SessionDuration)
	claims := &models.SessionClaims{
		UserID: session.UserID,
		Email:  session.Email,
		Role:   session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(session.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{SignedString: signed, ExpiresAt: expiresAt}, nil
}

// ValidateAndParseSessionToken verifies tokenString and returns the session
// it encodes.
//
// Validation covers the signature, the algorithm (only HS256 is accepted),
// the issuer, the expiry and the presence of the identity claims. Any
// failure is reported as [ErrInvalidToken] wrapping the cause.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.Session, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.UserID == 0 || claims.Role == "" {
		return models.Session{}, fmt.Errorf("%w: missing identity claims", ErrInvalidToken)
	}

	return claims.Session(), nil
}
