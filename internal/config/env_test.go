// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":           "jwt_secret",
		"APP_TOKEN_ISSUER":             "test_issuer",
		"APP_PASSWORD_COST":            "12",
		"APP_COOKIE_SECURE":            "true",
		"APP_TRUST_FORWARDED_FOR":      "true",
		"APP_LOGIN_RATE_PER_MINUTE":    "20",
		"APP_LOGIN_RATE_BURST":         "3",
		"APP_BOOTSTRAP_ADMIN_EMAIL":    "root@example.com",
		"APP_BOOTSTRAP_ADMIN_PASSWORD": "s3cret",
		"APP_VERSION":                  "1.4.0",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DRIVER":         "sqlite3",
		"STORAGE_DB_DATABASE_URI":   "file:cms.db",
		"STORAGE_DB_MAX_OPEN_CONNS": "4",

		"WORKERS_LIMITER_SWEEP_INTERVAL": "2m",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 12, cfg.App.PasswordCost)
	assert.True(t, cfg.App.CookieSecure)
	assert.True(t, cfg.App.TrustForwardedFor)
	assert.Equal(t, 20, cfg.App.LoginRatePerMinute)
	assert.Equal(t, 3, cfg.App.LoginRateBurst)
	assert.Equal(t, "root@example.com", cfg.App.BootstrapAdminEmail)
	assert.Equal(t, "s3cret", cfg.App.BootstrapAdminPassword)
	assert.Equal(t, "1.4.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:cms.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 4, cfg.Storage.DB.MaxOpenConns)

	assert.Equal(t, 2*time.Minute, cfg.Workers.LimiterSweepInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "only_key",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "only_key", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.App.PasswordCost)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "not-a-duration",
	})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_PASSWORD_COST": "ten",
	})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
