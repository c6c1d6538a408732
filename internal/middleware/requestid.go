// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/maintainarr/maintainarr/internal/logging"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLength = 128

// RequestID echoes an inbound X-Request-Id or generates a UUID v4, sets it
// on the response and stores it in the request context together with a
// logger carrying the method and path.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithLogger(ctx, logging.With().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
