// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/service"
	"github.com/MKhiriev/go-cms-admin/internal/store"
	"github.com/MKhiriev/go-cms-admin/internal/utils"
	"github.com/MKhiriev/go-cms-admin/internal/validators"
	"github.com/MKhiriev/go-cms-admin/models"
)

// errorStatuses is checked in order, so an error wrapping several sentinels
// gets the status of the first one listed. Rule violations come before store
// sentinels: an unknown role wraps store.ErrNotFound but is still a 400.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrTooManyRequests, http.StatusTooManyRequests},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrInvalidSession, http.StatusUnauthorized},

	{service.ErrSelfDeletion, http.StatusBadRequest},
	{service.ErrProtectedRole, http.StatusBadRequest},
	{service.ErrUnknownRole, http.StatusBadRequest},
	{validators.ErrValidation, http.StatusBadRequest},
	{utils.ErrMalformedBody, http.StatusBadRequest},
	{ErrInvalidID, http.StatusBadRequest},

	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrAlreadyExists, http.StatusConflict},
	{store.ErrReferenced, http.StatusConflict},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text shown to the client. Only rule
// violations echo the error itself; everything else gets a generic message
// and driver detail stays in the logs.
func messageFromError(err error, status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusTooManyRequests:
		return err.Error()
	case http.StatusUnauthorized:
		if errors.Is(err, service.ErrInvalidCredentials) {
			return "Invalid email or password"
		}
		return "Unauthorized"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusConflict:
		if errors.Is(err, store.ErrReferenced) {
			return "Resource is still in use"
		}
		return "Resource already exists"
	default:
		return "Internal server error"
	}
}

// writeError logs err and answers with the mapped status and a JSON body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err, status)}, status)
}
