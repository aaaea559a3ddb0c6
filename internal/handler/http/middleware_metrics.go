// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the collectors of one Handler. Every Handler owns its
// registry so several routers can live in one process.
type metrics struct {
	registry *prometheus.Registry

	inFlight        prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newMetrics(buildInfo models.AppBuildInfo) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	build := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "build_info",
		Help: "CMS admin server build information.",
	}, []string{"version", "commit"})
	build.WithLabelValues(buildInfo.BuildVersion(), buildInfo.BuildCommit()).Set(1)

	m.registry.MustRegister(
		m.inFlight,
		m.requestsTotal,
		m.requestDuration,
		build,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// withMetrics records request count, latency and in-flight gauge labelled
// by the matched route pattern. Unmatched requests share the "unmatched"
// label to keep cardinality bounded.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.metrics.inFlight.Inc()
		defer h.metrics.inFlight.Dec()

		start := time.Now()
		mw := wrapResponseWriter(w)
		next.ServeHTTP(mw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := strconv.Itoa(mw.statusCode())

		h.metrics.requestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		h.metrics.requestsTotal.WithLabelValues(r.Method, route, status).Inc()
	})
}

func (h *Handler) metricsHandler() http.Handler {
	return promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{})
}
