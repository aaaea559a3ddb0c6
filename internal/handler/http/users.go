// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cms-admin/internal/service"
	"github.com/MKhiriev/go-cms-admin/internal/utils"
	"github.com/MKhiriev/go-cms-admin/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var request models.UserCreate
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(r.Context(), request); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var request models.UserUpdate
	if err = utils.DecodeJSON(w, r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}
	request.ID = id
	if err = h.validator.Validate(r.Context(), request); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	session := currentSession(r)
	if session == nil {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), *session, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
