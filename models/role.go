// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Built-in role names seeded by the initial migration. The set of roles is
// open: operators may add their own rows, only [RoleSuperAdmin] is protected.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleEditor     = "editor"
)

// Role is a named permission tier. Users reference roles by Name.
type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}

// IsProtected reports whether the role may never be deleted or renamed.
func (r Role) IsProtected() bool {
	return r.Name == RoleSuperAdmin
}
