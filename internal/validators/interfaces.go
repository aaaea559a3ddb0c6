// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the explicit request schemas of the admin and
// public API.
//
// Handlers decode a request body into a model and pass it to a Validator
// before any service call. A request is either accepted as is or rejected
// with one of the enumerated errors of this package, all of which wrap
// [ErrValidation].
//
// Validation can be scoped to a subset of fields by passing field names
// (see the Field* constants). When none are given, every rule of the type
// is applied.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
