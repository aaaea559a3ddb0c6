// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 2 * time.Minute
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer derives read and write deadlines from the request timeout so
// a handler cancelled by the timeout middleware can still write its reply.
func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	if cfg.RequestTimeout > 0 {
		srv.ReadTimeout = cfg.RequestTimeout
		srv.WriteTimeout = cfg.RequestTimeout + 5*time.Second
	}

	return &httpServer{server: srv, logger: logger}
}

// RunServer blocks in ListenAndServe. A closed server is not an error.
func (h *httpServer) RunServer() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("HTTP server listening")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	return h.server.Shutdown(ctx)
}
