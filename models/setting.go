// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Well-known setting keys edited from the dashboard settings page.
const (
	SettingSiteName         = "site_name"
	SettingSiteTagline      = "site_tagline"
	SettingContactEmail     = "contact_email"
	SettingContactPhone     = "contact_phone"
	SettingContactAddress   = "contact_address"
	SettingMissionStatement = "mission_statement"
	SettingVisionStatement  = "vision_statement"
	SettingFacebookURL      = "facebook_url"
	SettingTwitterURL       = "twitter_url"
	SettingInstagramURL     = "instagram_url"
	SettingLinkedInURL      = "linkedin_url"
)

// ErrSettingsNotAnObject is returned when a settings payload is not a JSON object.
var ErrSettingsNotAnObject = errors.New("settings payload must be a JSON object")

// Setting is a single row of the site_settings table.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Setting model.
func (s Setting) TableName() string {
	return "site_settings"
}

// SettingsUpdate is an ordered set of key/value pairs to upsert.
// Order follows the order of the keys in the decoded JSON object, so a batch
// is always applied in the order the client sent it.
type SettingsUpdate []Setting

// UnmarshalJSON decodes a flat JSON object preserving key order.
// String values are taken as is, numbers and booleans keep their JSON text,
// null becomes an empty string. Nested objects and arrays are rejected.
func (u *SettingsUpdate) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrSettingsNotAnObject
	}

	settings := make(SettingsUpdate, 0, 16)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		value, err := settingValue(raw)
		if err != nil {
			return fmt.Errorf("setting %q: %w", key, err)
		}

		settings = append(settings, Setting{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*u = settings
	return nil
}

// Map returns the update as a plain map. Later duplicates win.
func (u SettingsUpdate) Map() map[string]string {
	m := make(map[string]string, len(u))
	for _, s := range u {
		m[s.Key] = s.Value
	}
	return m
}

func settingValue(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", errors.New("value must be a scalar")
	case 'n':
		return "", nil
	default:
		return string(trimmed), nil
	}
}

// SiteSettings is the typed read-side view of the well-known setting keys.
// Missing keys are empty strings.
type SiteSettings struct {
	SiteName         string `json:"site_name"`
	SiteTagline      string `json:"site_tagline"`
	ContactEmail     string `json:"contact_email"`
	ContactPhone     string `json:"contact_phone"`
	ContactAddress   string `json:"contact_address"`
	MissionStatement string `json:"mission_statement"`
	VisionStatement  string `json:"vision_statement"`
	Social           Social `json:"social"`
}

// Social groups the social network links of the organization.
type Social struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

// NewSiteSettings projects a flat key/value mapping onto [SiteSettings].
func NewSiteSettings(m map[string]string) SiteSettings {
	return SiteSettings{
		SiteName:         m[SettingSiteName],
		SiteTagline:      m[SettingSiteTagline],
		ContactEmail:     m[SettingContactEmail],
		ContactPhone:     m[SettingContactPhone],
		ContactAddress:   m[SettingContactAddress],
		MissionStatement: m[SettingMissionStatement],
		VisionStatement:  m[SettingVisionStatement],
		Social: Social{
			Facebook:  m[SettingFacebookURL],
			Twitter:   m[SettingTwitterURL],
			Instagram: m[SettingInstagramURL],
			LinkedIn:  m[SettingLinkedInURL],
		},
	}
}
