// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package metrics exposes Prometheus instrumentation for the request
// pipeline, the profile cache, the candidate supplier, and the learning
// queue.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request pipeline metrics.

	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "souschef_requests_total",
			Help: "Total assistant requests by resolved intent and outcome",
		},
		[]string{"intent", "outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "souschef_request_duration_seconds",
			Help:    "End-to-end request processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"intent"},
	)

	PipelineStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "souschef_pipeline_stage_duration_seconds",
			Help:    "Per-stage pipeline duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"stage"}, // interpret, profile, context, score, assemble
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "souschef_active_requests",
			Help: "Requests currently in the pipeline",
		},
	)

	// Profile cache metrics.

	ProfileCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "souschef_profile_cache_hits_total",
			Help: "Profile cache hits",
		},
	)

	ProfileCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "souschef_profile_cache_misses_total",
			Help: "Profile cache misses",
		},
	)

	// Candidate supplier metrics.

	CandidatesSupplied = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "souschef_candidates_supplied",
			Help:    "Candidates returned per supplier call",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	SupplierBreakerOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "souschef_supplier_breaker_open",
			Help: "1 while the candidate supplier circuit breaker is open",
		},
	)

	// Learning pipeline metrics.

	LearningEventsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "souschef_learning_events_published_total",
			Help: "Interaction records handed to the learning pipeline",
		},
	)

	LearningEventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "souschef_learning_events_dropped_total",
			Help: "Interaction records dropped by the learning pipeline",
		},
	)

	// Store metrics.

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "souschef_store_operation_duration_seconds",
			Help:    "Interaction store operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // append, read, preferences_get, preferences_merge
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "souschef_store_errors_total",
			Help: "Interaction store errors by operation",
		},
		[]string{"operation"},
	)

	// HTTP metrics.

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "souschef_http_requests_total",
			Help: "HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "souschef_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// ObserveRequest records one finished pipeline request.
func ObserveRequest(intent, outcome string, duration time.Duration) {
	RequestsTotal.WithLabelValues(intent, outcome).Inc()
	RequestDuration.WithLabelValues(intent).Observe(duration.Seconds())
}

// ObserveStage records one pipeline stage duration.
func ObserveStage(stage string, duration time.Duration) {
	PipelineStageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// ObserveHTTP records one served HTTP request.
func ObserveHTTP(method, path string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveStore records one store operation, counting err as a failure.
func ObserveStore(operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		StoreErrors.WithLabelValues(operation).Inc()
	}
}
