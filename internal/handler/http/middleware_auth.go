// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cms-admin/internal/service"
	"github.com/MKhiriev/go-cms-admin/internal/utils"
	"github.com/MKhiriev/go-cms-admin/models"
)

// requireSession verifies the admin_token cookie and stores the resulting
// session in the request context under [utils.SessionCtxKey]. Requests
// without a cookie or with an invalid or expired token get 401.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(models.SessionCookieName)
		if err != nil || cookie.Value == "" {
			h.writeError(w, r, service.ErrUnauthorized)
			return
		}

		session, err := h.services.AuthService.ParseToken(r.Context(), cookie.Value)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), session)))
	})
}

// requireRole lets the request through only when the session role is one
// of roles. It must run after requireSession.
func (h *Handler) requireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := service.RequireRole(currentSession(r), roles...); err != nil {
				h.writeError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
