// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the CMS admin server: startup,
// serving until the context is cancelled, and graceful shutdown.
package server
