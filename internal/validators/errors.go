// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every rule violation so callers can map the
// whole family with a single errors.Is check.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmailRequired       = fmt.Errorf("%w: email is required", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: email is malformed", ErrValidation)
	ErrPasswordRequired    = fmt.Errorf("%w: password is required", ErrValidation)
	ErrNameRequired        = fmt.Errorf("%w: name is required", ErrValidation)
	ErrRoleRequired        = fmt.Errorf("%w: role is required", ErrValidation)
	ErrTitleRequired       = fmt.Errorf("%w: title is required", ErrValidation)
	ErrYearRequired        = fmt.Errorf("%w: year is required", ErrValidation)
	ErrLabelRequired       = fmt.Errorf("%w: label is required", ErrValidation)
	ErrMessageRequired     = fmt.Errorf("%w: message is required", ErrValidation)
	ErrInterestRequired    = fmt.Errorf("%w: interest is required", ErrValidation)
	ErrReadStatusRequired  = fmt.Errorf("%w: is_read is required", ErrValidation)
	ErrInvalidDisplayOrder = fmt.Errorf("%w: display_order must not be negative", ErrValidation)
	ErrValueTooLong        = fmt.Errorf("%w: value is too long", ErrValidation)
)
