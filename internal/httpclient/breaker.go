// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package httpclient

import (
	"net/http"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/maintainarr/maintainarr/internal/logging"
	"github.com/maintainarr/maintainarr/internal/metrics"
)

// Provider clients are built per request, so breakers are shared per host
// to remember failures across requests.
var (
	breakersMu sync.Mutex
	breakers   = map[string]*gobreaker.CircuitBreaker[*http.Response]{}
)

// BreakerSettings controls when a host is considered down.
var BreakerSettings = struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
	Interval            time.Duration
}{
	ConsecutiveFailures: 5,
	OpenTimeout:         30 * time.Second,
	Interval:            time.Minute,
}

func breakerFor(host string) *gobreaker.CircuitBreaker[*http.Response] {
	breakersMu.Lock()
	defer breakersMu.Unlock()

	if cb, ok := breakers[host]; ok {
		return cb
	}

	name := "provider:" + host
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    BreakerSettings.Interval,
		Timeout:     BreakerSettings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= BreakerSettings.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
	breakers[host] = cb
	return cb
}

// resetBreakers forgets all breaker state.
func resetBreakers() {
	breakersMu.Lock()
	breakers = map[string]*gobreaker.CircuitBreaker[*http.Response]{}
	breakersMu.Unlock()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
