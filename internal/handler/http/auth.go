// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/service"
	"github.com/MKhiriev/go-cms-admin/internal/utils"
	"github.com/MKhiriev/go-cms-admin/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(w, r, &credentials); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, credentials); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", result.User.ID).Msg("admin logged in")

	h.setSessionCookie(w, result.Token)
	utils.WriteJSON(w, models.UserResponse{User: result.User}, http.StatusOK)
}

// me re-reads the account behind the session so that a deleted user stops
// being reported as signed in.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	session := currentSession(r)
	if session == nil {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), *session)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

// logout only clears the cookie: issued tokens stay valid until they expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
