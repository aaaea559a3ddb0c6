// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/utils"
	"github.com/MKhiriev/go-cms-admin/models"
)

// publicSettings never fails: the public site renders with empty settings
// rather than an error page.
func (h *Handler) publicSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.SettingsService.GetAll(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("settings unavailable, serving empty set")
		settings = map[string]string{}
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) siteSettings(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.SettingsService.Site(r.Context()), http.StatusOK)
}

func (h *Handler) adminSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.SettingsService.GetAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var update models.SettingsUpdate
	if err := utils.DecodeJSON(w, r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.SettingsService.SetMany(r.Context(), update); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
