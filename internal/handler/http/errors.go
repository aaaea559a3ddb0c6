// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidID is returned when the {id} path segment is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrTooManyRequests is reported when a client exceeds the login rate.
	ErrTooManyRequests = errors.New("too many login attempts, try again later")
)
