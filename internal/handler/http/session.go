// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-cms-admin/internal/utils"
	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/go-chi/chi/v5"
)

// setSessionCookie stores token in the HttpOnly admin cookie. The cookie
// expires together with the token.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	maxAge := int(time.Until(token.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = int(models.SessionDuration.Seconds())
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    token.String(),
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie instructs the browser to drop the admin cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// currentSession returns the session stored by requireSession, or nil.
func currentSession(r *http.Request) *models.Session {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return nil
	}
	return &session
}

// parseID reads the {id} path parameter.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
