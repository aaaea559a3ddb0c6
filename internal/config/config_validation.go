// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Driver names accepted in [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DefaultTokenSignKey is used when no signing key is configured. It exists so
// a fresh checkout starts; deployments must override it.
const DefaultTokenSignKey = "cms-secret-key-change-in-production"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:       DefaultTokenSignKey,
			TokenIssuer:        "go-cms-admin",
			PasswordCost:       10,
			LoginRatePerMinute: 10,
			LoginRateBurst:     5,
			Version:            "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			LimiterSweepInterval: time.Minute,
		},
	}
}

// UsesDefaultTokenSignKey reports whether sessions are signed with the
// built-in fallback secret.
func (cfg *StructuredConfig) UsesDefaultTokenSignKey() bool {
	return cfg.App.TokenSignKey == DefaultTokenSignKey
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordCost < bcrypt.MinCost || cfg.App.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password cost must be in range %d..%d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.App.LoginRatePerMinute <= 0 || cfg.App.LoginRateBurst <= 0 {
		return fmt.Errorf("%w: login rate limits must be positive", ErrInvalidAppConfigs)
	}

	if (cfg.App.BootstrapAdminEmail == "") != (cfg.App.BootstrapAdminPassword == "") {
		return fmt.Errorf("%w: bootstrap admin needs both email and password", ErrInvalidAppConfigs)
	}

	if cfg.Workers.LimiterSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (s Storage) validate() error {
	switch s.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, s.DB.Driver)
	}

	if s.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if s.DB.MaxOpenConns <= 0 {
		return fmt.Errorf("%w: max open connections must be positive", ErrInvalidStorageConfigs)
	}

	return nil
}
