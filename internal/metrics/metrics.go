// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintainarr_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "maintainarr_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "maintainarr_api_active_requests",
			Help: "Number of requests currently being served",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintainarr_api_rate_limit_hits_total",
			Help: "Requests rejected by the inbound rate limiter",
		},
		[]string{"route_group"},
	)

	// Provider Metrics
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintainarr_provider_requests_total",
			Help: "Outbound requests to external providers",
		},
		[]string{"provider", "result"}, // result: "success", "error"
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "maintainarr_provider_request_duration_seconds",
			Help:    "Duration of outbound provider requests in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)

	RatingsLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintainarr_ratings_lookups_total",
			Help: "Rating lookups by source and outcome",
		},
		[]string{"source", "outcome"}, // outcome: "found", "not_found", "error"
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintainarr_cache_hits_total",
			Help: "Cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintainarr_cache_misses_total",
			Help: "Cache misses",
		},
		[]string{"cache"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "maintainarr_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintainarr_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Session Metrics
	SessionsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "maintainarr_sessions_purged_total",
			Help: "Expired sessions removed by opportunistic purges",
		},
	)

	// Authorization Metrics
	AuthzDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintainarr_authz_decisions_total",
			Help: "Authorization decisions by role, object and result",
		},
		[]string{"role", "object", "decision"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "maintainarr_db_query_duration_seconds",
			Help:    "Duration of SQLite queries in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintainarr_db_query_errors_total",
			Help: "Total number of failed SQLite queries",
		},
		[]string{"operation", "table"},
	)
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordProviderRequest records one outbound provider call.
func RecordProviderRequest(provider string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	ProviderRequestsTotal.WithLabelValues(provider, result).Inc()
	ProviderRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordRatingLookup records the outcome of a rating lookup.
func RecordRatingLookup(source, outcome string) {
	RatingsLookups.WithLabelValues(source, outcome).Inc()
}

// RecordCacheLookup records a hit or a miss for the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
		return
	}
	CacheMisses.WithLabelValues(cache).Inc()
}

// RecordDBQuery records a SQLite statement.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAuthzDecision counts one allow or deny decision.
func RecordAuthzDecision(role, object string, allowed bool) {
	decision := "deny"
	if allowed {
		decision = "allow"
	}
	AuthzDecisions.WithLabelValues(role, object, decision).Inc()
}
