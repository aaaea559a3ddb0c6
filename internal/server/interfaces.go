// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns the listener error if serving fails.
	Run(ctx context.Context) error
	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
