// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the bcrypt input limit. Longer passwords are cut at
// this length both when hashing and when verifying, so they stay usable.
const maxPasswordBytes = 72

// HashPassword derives a salted bcrypt hash of password with the given work
// factor. Empty passwords are accepted; rejecting them is a validation
// concern of the caller.
//
// The only expected failure is the system random source being unavailable.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A malformed hash never panics: it is logged through the context logger
// and reported as a mismatch.
func VerifyPassword(ctx context.Context, password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password))
	if err == nil {
		return true
	}

	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "utils.VerifyPassword").
			Msg("stored password hash is malformed")
	}

	return false
}

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}

	return b
}
