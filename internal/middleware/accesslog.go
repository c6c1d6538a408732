// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package middleware

import (
	"net/http"
	"time"

	"github.com/maintainarr/maintainarr/internal/logging"
)

// DefaultSlowRequest is the latency above which requests log at warn level.
const DefaultSlowRequest = 2 * time.Second

// AccessLog logs one line per request. Requests slower than slow, or
// answered with a 5xx, log at warn level.
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	if slow <= 0 {
		slow = DefaultSlowRequest
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)
			elapsed := time.Since(start)

			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			if elapsed > slow || rec.status >= http.StatusInternalServerError {
				event = logger.Warn()
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Int64("duration_ms", elapsed.Milliseconds()).
				Str("remote_addr", r.RemoteAddr).
				Msg("HTTP request")
		})
	}
}
