// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an administrative account of the dashboard.
// PasswordHash never leaves the server: it is excluded from JSON and is only
// read by the credential check during login.
type User struct {
	// ID is the unique, immutable numeric identifier of the account.
	ID int64 `json:"id"`

	// Email is unique and used as the login key.
	Email string `json:"email"`

	// Name is the display name shown in the dashboard.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// Role names one of the rows of the roles table.
	Role string `json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "admin_users"
}

// Public returns the projection of the user that is safe to hand to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// PublicUser is the client-visible projection of [User].
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned by a successful login: the public user projection
// and the signed session token that the HTTP layer puts into a cookie.
type LoginResult struct {
	User  PublicUser
	Token Token
}

// UserCreate is the validated payload of the create-user operation.
type UserCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserUpdate is the validated payload of the update-user operation.
// An empty Password leaves the stored hash untouched.
type UserUpdate struct {
	ID       int64  `json:"-"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}
