// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so a caller cannot tell which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidSession     = errors.New("invalid or expired session")

	ErrSelfDeletion  = errors.New("you cannot delete your own account")
	ErrProtectedRole = errors.New("the super_admin role cannot be renamed or deleted")
	ErrUnknownRole   = errors.New("role does not exist")

	ErrTokenCreationFailed   = errors.New("session token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
