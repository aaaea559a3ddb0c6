// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// http.NewHandler only stores the services pointer, so nil is safe for
// construction-time tests.
func TestNewHandlers_WithHTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h, err := NewHandlers(nil, cfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.LoginLimiter())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, config.StructuredConfig{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// Each handler owns its metrics registry, so building two must not panic on
// duplicate registration.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}
	buildInfo := models.NewAppBuildInfo("1.0.0", "", "")

	h1, err1 := NewHandlers(nil, cfg, buildInfo, logger.Nop())
	h2, err2 := NewHandlers(nil, cfg, buildInfo, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
