// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client bucket may stay unused before Sweep
// evicts it.
const limiterIdleTTL = 10 * time.Minute

type limiterBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginLimiter is a per-client token bucket guarding the login endpoint.
// Buckets are created lazily and evicted by Sweep once idle.
type LoginLimiter struct {
	mu      sync.Mutex
	buckets map[string]*limiterBucket

	limit rate.Limit
	burst int
	now   func() time.Time
}

// NewLoginLimiter allows perMinute attempts per client with the given burst.
// A non-positive perMinute disables throttling.
func NewLoginLimiter(perMinute, burst int) *LoginLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(float64(perMinute) / 60)
	}
	if burst <= 0 {
		burst = 1
	}

	return &LoginLimiter{
		buckets: make(map[string]*limiterBucket),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

// Allow reports whether the client identified by key may attempt a login now.
func (l *LoginLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &limiterBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

// Sweep drops buckets idle since before now minus the idle TTL and returns
// how many were removed.
func (l *LoginLimiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > limiterIdleTTL {
			delete(l.buckets, key)
			evicted++
		}
	}

	return evicted
}

// Len returns the number of tracked clients.
func (l *LoginLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.buckets)
}

// limitLogin rejects a client with 429 once its login budget is spent.
func (h *Handler) limitLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.loginLimiter.Allow(clientIP(r)) {
			h.writeError(w, r, ErrTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP keys the limiter on the connection address. Forwarding headers
// only count when middleware.RealIP has already rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
