// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// several workers side by side until their context is cancelled.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper evicts state that has been idle since before now and reports how
// many entries were removed.
type Sweeper interface {
	Sweep(now time.Time) int
}
