// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-cms-admin/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldName         = "name"
	FieldRole         = "role"
	FieldTitle        = "title"
	FieldYear         = "year"
	FieldLabel        = "label"
	FieldMessage      = "message"
	FieldInterest     = "interest"
	FieldIsRead       = "is_read"
	FieldDisplayOrder = "display_order"
)

// Column widths of the schema. Longer values are rejected here instead of
// surfacing as driver errors.
const (
	maxEmailLength    = 255
	maxNameLength     = 255
	maxRoleLength     = 50
	maxTitleLength    = 255
	maxYearLength     = 20
	maxInterestLength = 100
)

// RequestValidator validates every request body accepted by the HTTP API.
type RequestValidator struct {
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj. Both value and pointer forms are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known request.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.UserCreate:
		return v.validateUserCreate(value, fields...)
	case *models.UserCreate:
		return v.validateUserCreate(*value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields...)

	case models.Role:
		return v.validateRole(value, fields...)
	case *models.Role:
		return v.validateRole(*value, fields...)

	case models.HeroSlide:
		return v.validateContent(value.Title, "", value.DisplayOrder, withDefault(fields, FieldTitle, FieldDisplayOrder)...)
	case *models.HeroSlide:
		return v.validateContent(value.Title, "", value.DisplayOrder, withDefault(fields, FieldTitle, FieldDisplayOrder)...)

	case models.Program:
		return v.validateContent(value.Title, "", value.DisplayOrder, withDefault(fields, FieldTitle, FieldDisplayOrder)...)
	case *models.Program:
		return v.validateContent(value.Title, "", value.DisplayOrder, withDefault(fields, FieldTitle, FieldDisplayOrder)...)

	case models.TeamMember:
		return v.validateTeamMember(value, fields...)
	case *models.TeamMember:
		return v.validateTeamMember(*value, fields...)

	case models.Milestone:
		return v.validateContent(value.Title, value.Year, value.DisplayOrder, withDefault(fields, FieldYear, FieldTitle, FieldDisplayOrder)...)
	case *models.Milestone:
		return v.validateContent(value.Title, value.Year, value.DisplayOrder, withDefault(fields, FieldYear, FieldTitle, FieldDisplayOrder)...)

	case models.ImpactStat:
		return v.validateImpactStat(value, fields...)
	case *models.ImpactStat:
		return v.validateImpactStat(*value, fields...)

	case models.ContactSubmission:
		return v.validateContactSubmission(value, fields...)
	case *models.ContactSubmission:
		return v.validateContactSubmission(*value, fields...)

	case models.InterestSubmission:
		return v.validateInterestSubmission(value, fields...)
	case *models.InterestSubmission:
		return v.validateInterestSubmission(*value, fields...)

	case models.ReadStatusUpdate:
		return v.validateReadStatus(value, fields...)
	case *models.ReadStatusUpdate:
		return v.validateReadStatus(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials only checks presence. A malformed email on login is an
// unknown account, not a validation failure.
func (v *RequestValidator) validateCredentials(c models.Credentials, fields ...string) error {
	for _, f := range withDefault(fields, FieldEmail, FieldPassword) {
		switch f {
		case FieldEmail:
			if isBlank(c.Email) {
				return ErrEmailRequired
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUserCreate(u models.UserCreate, fields ...string) error {
	for _, f := range withDefault(fields, FieldName, FieldEmail, FieldPassword, FieldRole) {
		switch f {
		case FieldName:
			if err := requiredWithin(u.Name, maxNameLength, ErrNameRequired); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(u.Email); err != nil {
				return err
			}
		case FieldPassword:
			if u.Password == "" {
				return ErrPasswordRequired
			}
		case FieldRole:
			if err := requiredWithin(u.Role, maxRoleLength, ErrRoleRequired); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserUpdate mirrors validateUserCreate except that the password is
// optional: an empty one keeps the stored hash.
func (v *RequestValidator) validateUserUpdate(u models.UserUpdate, fields ...string) error {
	for _, f := range withDefault(fields, FieldName, FieldEmail, FieldRole) {
		switch f {
		case FieldName:
			if err := requiredWithin(u.Name, maxNameLength, ErrNameRequired); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(u.Email); err != nil {
				return err
			}
		case FieldRole:
			if err := requiredWithin(u.Role, maxRoleLength, ErrRoleRequired); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRole(r models.Role, fields ...string) error {
	for _, f := range withDefault(fields, FieldName) {
		switch f {
		case FieldName:
			if err := requiredWithin(r.Name, maxRoleLength, ErrNameRequired); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateContent covers the content kinds whose only rules are a title, an
// optional year and a non-negative display order.
func (v *RequestValidator) validateContent(title, year string, displayOrder int, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := requiredWithin(title, maxTitleLength, ErrTitleRequired); err != nil {
				return err
			}
		case FieldYear:
			if err := requiredWithin(year, maxYearLength, ErrYearRequired); err != nil {
				return err
			}
		case FieldDisplayOrder:
			if displayOrder < 0 {
				return ErrInvalidDisplayOrder
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateTeamMember(m models.TeamMember, fields ...string) error {
	for _, f := range withDefault(fields, FieldName, FieldEmail, FieldDisplayOrder) {
		switch f {
		case FieldName:
			if err := requiredWithin(m.Name, maxNameLength, ErrNameRequired); err != nil {
				return err
			}
		case FieldEmail:
			// optional on a public profile
			if m.Email != "" {
				if err := validateEmail(m.Email); err != nil {
					return err
				}
			}
		case FieldDisplayOrder:
			if m.DisplayOrder < 0 {
				return ErrInvalidDisplayOrder
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateImpactStat(s models.ImpactStat, fields ...string) error {
	for _, f := range withDefault(fields, FieldLabel, FieldDisplayOrder) {
		switch f {
		case FieldLabel:
			if err := requiredWithin(s.Label, maxTitleLength, ErrLabelRequired); err != nil {
				return err
			}
		case FieldDisplayOrder:
			if s.DisplayOrder < 0 {
				return ErrInvalidDisplayOrder
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateContactSubmission(s models.ContactSubmission, fields ...string) error {
	for _, f := range withDefault(fields, FieldName, FieldEmail, FieldMessage) {
		switch f {
		case FieldName:
			if err := requiredWithin(s.Name, maxNameLength, ErrNameRequired); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(s.Email); err != nil {
				return err
			}
		case FieldMessage:
			if isBlank(s.Message) {
				return ErrMessageRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateInterestSubmission(s models.InterestSubmission, fields ...string) error {
	for _, f := range withDefault(fields, FieldName, FieldEmail, FieldInterest) {
		switch f {
		case FieldName:
			if err := requiredWithin(s.Name, maxNameLength, ErrNameRequired); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(s.Email); err != nil {
				return err
			}
		case FieldInterest:
			if err := requiredWithin(s.Interest, maxInterestLength, ErrInterestRequired); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateReadStatus(u models.ReadStatusUpdate, fields ...string) error {
	for _, f := range withDefault(fields, FieldIsRead) {
		switch f {
		case FieldIsRead:
			if u.IsRead == nil {
				return ErrReadStatusRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func withDefault(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func requiredWithin(s string, maxLength int, errRequired error) error {
	if isBlank(s) {
		return errRequired
	}
	if utf8.RuneCountInString(s) > maxLength {
		return ErrValueTooLong
	}
	return nil
}

func validateEmail(email string) error {
	if isBlank(email) {
		return ErrEmailRequired
	}
	if len(email) > maxEmailLength {
		return ErrValueTooLong
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}
