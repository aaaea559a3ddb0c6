// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey           string `json:"token_sign_key"`
		TokenIssuer            string `json:"token_issuer"`
		PasswordCost           int    `json:"password_cost"`
		CookieSecure           bool   `json:"cookie_secure"`
		TrustForwardedFor      bool   `json:"trust_forwarded_for"`
		LoginRatePerMinute     int    `json:"login_rate_per_minute"`
		LoginRateBurst         int    `json:"login_rate_burst"`
		BootstrapAdminEmail    string `json:"bootstrap_admin_email"`
		BootstrapAdminPassword string `json:"bootstrap_admin_password"`
		Version                string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		LimiterSweepInterval Duration `json:"limiter_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:           jsonCfg.App.TokenSignKey,
			TokenIssuer:            jsonCfg.App.TokenIssuer,
			PasswordCost:           jsonCfg.App.PasswordCost,
			CookieSecure:           jsonCfg.App.CookieSecure,
			TrustForwardedFor:      jsonCfg.App.TrustForwardedFor,
			LoginRatePerMinute:     jsonCfg.App.LoginRatePerMinute,
			LoginRateBurst:         jsonCfg.App.LoginRateBurst,
			BootstrapAdminEmail:    jsonCfg.App.BootstrapAdminEmail,
			BootstrapAdminPassword: jsonCfg.App.BootstrapAdminPassword,
			Version:                jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver:       jsonCfg.Storage.DB.Driver,
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			LimiterSweepInterval: time.Duration(jsonCfg.Workers.LimiterSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
