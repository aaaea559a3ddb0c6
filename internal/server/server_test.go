// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/handler"
	httphandler "github.com/MKhiriev/go-cms-admin/internal/handler/http"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/service"
	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers(addr string) *handler.Handlers {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: addr}}
	return &handler.Handlers{
		HTTP: httphandler.NewHandler(&service.Services{}, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop()),
	}
}

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	require.ErrorIs(t, err, errHTTPNotConfigured)
	assert.Nil(t, srv)

	srv, err = NewServer(testHandlers(""), config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errHTTPNotConfigured)
	assert.Nil(t, srv)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	srv, err := NewServer(testHandlers("127.0.0.1:0"), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	srv, err := NewServer(testHandlers("bad-address"), config.Server{HTTPAddress: "bad-address"}, logger.Nop())
	require.NoError(t, err)

	err = srv.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP server failed")
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	router := http.NewServeMux()

	plain := newHTTPServer(router, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.Zero(t, plain.server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, plain.server.ReadHeaderTimeout)

	bounded := newHTTPServer(router, config.Server{HTTPAddress: ":0", RequestTimeout: 10 * time.Second}, logger.Nop())
	assert.Equal(t, 10*time.Second, bounded.server.ReadTimeout)
	assert.Equal(t, 15*time.Second, bounded.server.WriteTimeout)
}

func TestNewHTTPServer_ServesRouter(t *testing.T) {
	srv := newHTTPServer(testHandlers(":0").HTTP.Init(), config.Server{HTTPAddress: ":0"}, logger.Nop())

	rr := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}
