// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

// Package metrics exposes the Prometheus instrumentation for Homeshelf:
// filter pipeline phases, the HTTP API, the Jellyfin circuit breaker and
// section registration. All collectors register on the default registry
// and are served by promhttp at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Filter outcomes used as the "outcome" label.
const (
	OutcomeOK             = "ok"
	OutcomeUnknownSection = "unknown_section"
	OutcomeUnknownUser    = "unknown_user"
	OutcomeEmptySelection = "empty_selection"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeInvalidPayload = "invalid_payload"
	OutcomeRecoveredPanic = "panic"
	OutcomeRegistered     = "registered"
	OutcomeRegisterFailed = "failed"
	OutcomeSurfaceMissing = "surface_unavailable"
)

var (
	// Filter pipeline metrics
	FilterDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homeshelf_filter_duration_seconds",
			Help:    "Duration of one section filter invocation in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"outcome"},
	)

	FilterItemsFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "homeshelf_filter_items_fetched_total",
			Help: "File-level items returned by the catalog query",
		},
	)

	FilterItemsDiscarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homeshelf_filter_items_discarded_total",
			Help: "File-level items dropped before ranking",
		},
		[]string{"reason"}, // "no_size", "no_parent"
	)

	FilterRepresentatives = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "homeshelf_filter_representatives",
			Help:    "Distinct representative items per invocation before truncation",
			Buckets: []float64{0, 1, 5, 20, 50, 100, 500, 1000, 5000},
		},
	)

	FilterProjectionFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "homeshelf_filter_projection_failures_total",
			Help: "Items skipped because their projection failed",
		},
	)

	// Section registration metrics
	SectionRegistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homeshelf_section_registrations_total",
			Help: "Section registration attempts by result",
		},
		[]string{"result"},
	)

	SectionsConfigured = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "homeshelf_sections_configured",
			Help: "Number of section profiles currently loaded",
		},
	)

	ConfigReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homeshelf_config_reloads_total",
			Help: "Configuration reloads by result",
		},
		[]string{"result"},
	)

	// Jellyfin client metrics
	JellyfinRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homeshelf_jellyfin_request_duration_seconds",
			Help:    "Duration of Jellyfin API requests in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation", "status"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordFilter records one filter invocation.
func RecordFilter(outcome string, duration time.Duration) {
	FilterDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordFilterPhase records the counts observed while ranking one section.
func RecordFilterPhase(fetched, noSize, noParent, representatives int) {
	FilterItemsFetched.Add(float64(fetched))
	if noSize > 0 {
		FilterItemsDiscarded.WithLabelValues("no_size").Add(float64(noSize))
	}
	if noParent > 0 {
		FilterItemsDiscarded.WithLabelValues("no_parent").Add(float64(noParent))
	}
	FilterRepresentatives.Observe(float64(representatives))
}

// RecordRegistration records one section registration attempt.
func RecordRegistration(result string) {
	SectionRegistrations.WithLabelValues(result).Inc()
}

// RecordJellyfinRequest records one Jellyfin API call.
func RecordJellyfinRequest(operation, status string, duration time.Duration) {
	JellyfinRequestDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
