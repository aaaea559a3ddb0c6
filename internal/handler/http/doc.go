// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the CMS backend.
//
// It exposes the public site API and the admin API under /api/admin. Cross
// cutting concerns are handled here before requests reach the service
// layer: request tracing, access logging, Prometheus metrics, login
// throttling, cookie sessions and role gating. Every error response is a
// JSON object of the form {"error": "<message>"}.
package http
