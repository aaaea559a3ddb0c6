// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cms-admin/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetVersionInfo(r.Context()), http.StatusOK)
}
