// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Content is the set of flat, display-ordered records edited from the
// dashboard and rendered on the public site.
type Content interface {
	HeroSlide | Program | TeamMember | Milestone | ImpactStat
}

// HeroSlide is one slide of the landing page carousel.
type HeroSlide struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	ImageURL     string    `json:"image_url"`
	CTAText      string    `json:"cta_text"`
	CTALink      string    `json:"cta_link"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the HeroSlide model.
func (HeroSlide) TableName() string { return "hero_slides" }

// Program is a program run by the organization.
type Program struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description"`
	Icon            string    `json:"icon"`
	ImageURL        string    `json:"image_url"`
	DisplayOrder    int       `json:"display_order"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Program model.
func (Program) TableName() string { return "programs" }

// TeamMember is a person shown on the about page.
type TeamMember struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Bio          string    `json:"bio"`
	ImageURL     string    `json:"image_url"`
	Email        string    `json:"email"`
	LinkedInURL  string    `json:"linkedin_url"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the TeamMember model.
func (TeamMember) TableName() string { return "team_members" }

// Milestone is an entry of the journey timeline.
type Milestone struct {
	ID           int64     `json:"id"`
	Year         string    `json:"year"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Milestone model.
func (Milestone) TableName() string { return "milestones" }

// ImpactStat is a headline number of the impact counter section.
type ImpactStat struct {
	ID           int64     `json:"id"`
	Label        string    `json:"label"`
	Value        int64     `json:"value"`
	Suffix       string    `json:"suffix"`
	Icon         string    `json:"icon"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ImpactStat model.
func (ImpactStat) TableName() string { return "impact_stats" }
