// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	router := newTestHandler(t, newTestServices(), testConfig()).Init()

	serve(t, router, http.MethodGet, "/api/programs", "", "")
	serve(t, router, http.MethodDelete, "/api/admin/programs/42", "", editorToken)

	rr := serve(t, router, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="/api/programs",status="200"} 1`)
	assert.Contains(t, body, `route="/api/admin/programs/{id}"`)
	assert.NotContains(t, body, `route="/api/admin/programs/42"`)
	assert.Contains(t, body, `build_info{commit="abc",version="1.0.0"} 1`)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	router := newTestHandler(t, newTestServices(), testConfig()).Init()

	serve(t, router, http.MethodGet, "/no/such/path", "", "")

	body := serve(t, router, http.MethodGet, "/metrics", "", "").Body.String()
	assert.Contains(t, body, `route="unmatched"`)
	assert.NotContains(t, body, "/no/such/path")
}
