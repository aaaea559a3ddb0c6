// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-cms-admin/internal/service"
	"github.com/MKhiriev/go-cms-admin/internal/utils"
	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/go-chi/chi/v5"
)

// newContentDefaults seeds a new item before the body is decoded onto it so
// that an omitted is_active means active.
var newContentDefaults = []byte(`{"is_active":true}`)

// mountPublicContent registers the read-only listing of active rows.
func mountPublicContent[T models.Content](h *Handler, r chi.Router, path string, svc service.ContentService[T]) {
	r.Get(path, func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, nonNil(items), http.StatusOK)
	})
}

// mountAdminContent registers list, create, update and delete of one
// content kind under path.
func mountAdminContent[T models.Content](h *Handler, r chi.Router, path string, svc service.ContentService[T]) {
	r.Get(path, listAllContent(h, svc))
	r.Post(path, createContent(h, svc))
	r.Put(path+"/{id}", updateContent(h, svc))
	r.Delete(path+"/{id}", deleteContent(h, svc))
}

func listAllContent[T models.Content](h *Handler, svc service.ContentService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, nonNil(items), http.StatusOK)
	}
}

func createContent[T models.Content](h *Handler, svc service.ContentService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item T
		if err := json.Unmarshal(newContentDefaults, &item); err != nil {
			h.writeError(w, r, err)
			return
		}
		if err := utils.DecodeJSON(w, r, &item); err != nil {
			h.writeError(w, r, err)
			return
		}
		if err := h.validator.Validate(r.Context(), item); err != nil {
			h.writeError(w, r, err)
			return
		}

		created, err := svc.Create(r.Context(), item)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, created, http.StatusCreated)
	}
}

// updateContent replaces every editable column, is_active included, with
// the body.
func updateContent[T models.Content](h *Handler, svc service.ContentService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		var item T
		if err = utils.DecodeJSON(w, r, &item); err != nil {
			h.writeError(w, r, err)
			return
		}
		if err = h.validator.Validate(r.Context(), item); err != nil {
			h.writeError(w, r, err)
			return
		}

		updated, err := svc.Update(r.Context(), id, item)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, updated, http.StatusOK)
	}
}

func deleteContent[T models.Content](h *Handler, svc service.ContentService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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
	}
}

// nonNil makes empty listings encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
