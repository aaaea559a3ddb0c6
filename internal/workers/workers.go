// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the server. limiter is the
// login throttle whose idle buckets the janitor evicts.
func NewWorkers(limiter Sweeper, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewLimiterJanitor(limiter, cfg.LimiterSweepInterval, logger.Named("limiter_janitor")),
		},
	}
}

// Run starts every worker in its own goroutine and waits for all of them to
// return, which happens once ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
