// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxRequestBodyBytes bounds JSON request bodies read by [DecodeJSON].
const MaxRequestBodyBytes = 1 << 20

// ErrMalformedBody is returned by [DecodeJSON] when the body is empty, too
// large or not valid JSON for the target type.
var ErrMalformedBody = errors.New("malformed request body")

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error. On success it returns the number of body bytes written.
//
// Example usage:
//
//	WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON reads a single JSON document from the request body into dst.
// Bodies larger than [MaxRequestBodyBytes] are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrMalformedBody)
		}
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return nil
}
