// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionDuration is the fixed lifetime of an issued session token.
// There is no refresh mechanism.
const SessionDuration = 7 * 24 * time.Hour

// SessionCookieName is the name of the HTTP-only cookie carrying the token.
const SessionCookieName = "admin_token"

// Session is the caller identity reconstructed from a verified token.
// It is never persisted server-side.
type Session struct {
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// SessionClaims is the JWT claim set of a session token. The identity fields
// sit next to the registered iss/sub/iat/exp claims.
type SessionClaims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`

	jwt.RegisteredClaims
}

// Session converts verified claims into a [Session].
func (c *SessionClaims) Session() Session {
	s := Session{
		UserID: c.UserID,
		Email:  c.Email,
		Role:   c.Role,
	}
	if c.IssuedAt != nil {
		s.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}

	return s
}

// Token is a signed session token ready to be handed to the client.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// ExpiresAt mirrors the "exp" claim so the cookie can expire together
	// with the token.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
