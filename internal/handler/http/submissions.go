// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cms-admin/internal/service"
	"github.com/MKhiriev/go-cms-admin/internal/utils"
	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/go-chi/chi/v5"
)

// mountPublicSubmission registers the visitor-facing form endpoint.
func mountPublicSubmission[T models.Submission](h *Handler, r chi.Router, path string, svc service.SubmissionService[T]) {
	r.Post(path, func(w http.ResponseWriter, r *http.Request) {
		var item T
		if err := utils.DecodeJSON(w, r, &item); err != nil {
			h.writeError(w, r, err)
			return
		}
		if err := h.validator.Validate(r.Context(), item); err != nil {
			h.writeError(w, r, err)
			return
		}

		created, err := svc.Submit(r.Context(), item)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, created, http.StatusCreated)
	})
}

// mountAdminSubmission registers the review endpoints: list newest first,
// mark read or unread, delete.
func mountAdminSubmission[T models.Submission](h *Handler, r chi.Router, path string, svc service.SubmissionService[T]) {
	r.Get(path, func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, nonNil(items), http.StatusOK)
	})

	r.Put(path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		var update models.ReadStatusUpdate
		if err = utils.DecodeJSON(w, r, &update); err != nil {
			h.writeError(w, r, err)
			return
		}
		if err = h.validator.Validate(r.Context(), update); err != nil {
			h.writeError(w, r, err)
			return
		}

		updated, err := svc.SetRead(r.Context(), id, *update.IsRead)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, updated, http.StatusOK)
	})

	r.Delete(path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if err = svc.Delete(r.Context(), id); err != nil {
			h.writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
	})
}
