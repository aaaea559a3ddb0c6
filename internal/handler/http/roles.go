// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cms-admin/internal/utils"
	"github.com/MKhiriev/go-cms-admin/models"
)

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.services.RoleService.ListRoles(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, roles, http.StatusOK)
}

func (h *Handler) createRole(w http.ResponseWriter, r *http.Request) {
	var role models.Role
	if err := utils.DecodeJSON(w, r, &role); err != nil {
		h.writeError(w, r, err)
		return
	}
	role.ID = 0
	if err := h.validator.Validate(r.Context(), role); err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.services.RoleService.CreateRole(r.Context(), role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var role models.Role
	if err = utils.DecodeJSON(w, r, &role); err != nil {
		h.writeError(w, r, err)
		return
	}
	role.ID = id
	if err = h.validator.Validate(r.Context(), role); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.RoleService.UpdateRole(r.Context(), role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.RoleService.DeleteRole(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
