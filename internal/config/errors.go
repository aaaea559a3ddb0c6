// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an out of range password cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sweep interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
