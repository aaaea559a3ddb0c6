// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTraceHandler returns a Handler logging into buf and a terminal handler
// that writes one entry through the request-scoped logger.
func newTraceHandler(buf *bytes.Buffer) (*Handler, http.Handler) {
	h := &Handler{logger: logger.New("test", buf)}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	return h, next
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	h, next := newTraceHandler(&buf)

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	traceID := rr.Header().Get(traceIDHeader)
	_, err := uuid.Parse(traceID)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, traceID, entry["trace_id"])
	assert.Equal(t, "test", entry["role"])
}

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	var buf bytes.Buffer
	h, next := newTraceHandler(&buf)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "upstream-123")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "upstream-123", rr.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"upstream-123"`)
}

func TestWithTraceID_DistinctPerRequest(t *testing.T) {
	var buf bytes.Buffer
	h, next := newTraceHandler(&buf)
	handler := h.withTraceID(next)

	rr1, rr2 := httptest.NewRecorder(), httptest.NewRecorder()
	handler.ServeHTTP(rr1, httptest.NewRequest(http.MethodGet, "/", nil))
	handler.ServeHTTP(rr2, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, rr1.Header().Get(traceIDHeader), rr2.Header().Get(traceIDHeader))
}
