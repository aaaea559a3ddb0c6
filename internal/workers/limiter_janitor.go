// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cms-admin/internal/logger"
)

const defaultSweepInterval = time.Minute

// LimiterJanitor periodically evicts idle login limiter buckets so the map
// does not grow with every address that ever tried to log in.
type LimiterJanitor struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *logger.Logger
}

func NewLimiterJanitor(sweeper Sweeper, interval time.Duration, logger *logger.Logger) *LimiterJanitor {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &LimiterJanitor{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (j *LimiterJanitor) Run(ctx context.Context) {
	if j.sweeper == nil {
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("limiter janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("limiter janitor stopped")
			return
		case now := <-ticker.C:
			if evicted := j.sweeper.Sweep(now); evicted > 0 {
				j.logger.Debug().Int("evicted", evicted).Msg("idle login buckets evicted")
			}
		}
	}
}
