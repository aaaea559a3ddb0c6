// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every non-2xx JSON response. Message is a
// generic, client-safe text; driver details are only logged.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges an operation that has nothing else to return.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UserResponse wraps the public user projection returned by login and the
// current-session check.
type UserResponse struct {
	User PublicUser `json:"user"`
}

// DashboardStats are the counters shown on the dashboard landing page.
type DashboardStats struct {
	HeroSlides      int64 `json:"heroSlides"`
	Programs        int64 `json:"programs"`
	TeamMembers     int64 `json:"teamMembers"`
	Milestones      int64 `json:"milestones"`
	ImpactStats     int64 `json:"impactStats"`
	UnreadMessages  int64 `json:"unreadMessages"`
	UnreadInterests int64 `json:"unreadInterests"`
}

// Dashboard is the response of the dashboard summary endpoint.
type Dashboard struct {
	Stats          DashboardStats      `json:"stats"`
	RecentMessages []ContactSubmission `json:"recentMessages"`
}
