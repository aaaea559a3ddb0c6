// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Submission is the set of visitor-submitted forms reviewed in the dashboard.
type Submission interface {
	ContactSubmission | InterestSubmission
}

// ContactSubmission is a message sent through the contact page.
type ContactSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ContactSubmission model.
func (ContactSubmission) TableName() string { return "contact_submissions" }

// InterestSubmission is a get-involved form entry.
type InterestSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Interest  string    `json:"interest"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the InterestSubmission model.
func (InterestSubmission) TableName() string { return "interest_submissions" }

// ReadStatusUpdate is the body of the mark-as-read operation.
type ReadStatusUpdate struct {
	IsRead *bool `json:"is_read"`
}
