// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// application: password hashing, session token signing and verification,
// typed context keys and HTTP response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-cms-admin/models"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the authenticated session is stored
// in a request context.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session stored by [WithSession].
// ok is false when the context carries no session.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}
