// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/utils"
	"github.com/MKhiriev/go-cms-admin/models"
)

// healthz reports 503 while the database is unreachable.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "database unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true, Message: "ok"}, http.StatusOK)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.services.DashboardService.Summary(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
