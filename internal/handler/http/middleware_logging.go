// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
)

// withLogging writes one access log line per request through the
// request-scoped logger.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		uri := r.RequestURI
		method := r.Method

		lw := wrapResponseWriter(w)
		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.statusCode()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
