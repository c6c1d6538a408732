// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package httpclient

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/maintainarr/maintainarr/internal/metrics"
)

// transport applies provider decoration to each request and logs failures.
type transport struct {
	next     http.RoundTripper
	provider string
	auth     AuthFunc
	headers  map[string]string
	breaker  *gobreaker.CircuitBreaker[*http.Response]
	logger   zerolog.Logger
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	out := req.Clone(req.Context())
	out.Header.Set("Accept", "application/json")
	for k, v := range t.headers {
		out.Header.Set(k, v)
	}
	if t.auth != nil {
		t.auth(out)
	}

	start := time.Now()
	resp, err := t.send(out)
	recErr := err
	if err == nil && resp.StatusCode >= 400 {
		recErr = errors.New(resp.Status)
	}
	metrics.RecordProviderRequest(t.provider, time.Since(start), recErr)

	switch {
	case err != nil:
		t.logger.Error().
			Str("provider", t.provider).
			Str("method", out.Method).
			Str("url", redactURL(out.URL)).
			Err(err).
			Msg("provider request failed")
	case resp.StatusCode >= 400:
		t.logger.Error().
			Str("provider", t.provider).
			Str("method", out.Method).
			Str("url", redactURL(out.URL)).
			Int("status", resp.StatusCode).
			Msg("provider request failed")
	}
	return resp, err
}

func (t *transport) send(req *http.Request) (*http.Response, error) {
	if t.breaker == nil {
		return t.next.RoundTrip(req)
	}

	resp, err := t.breaker.Execute(func() (*http.Response, error) {
		resp, err := t.next.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 500 {
			return nil, &serverError{resp: resp}
		}
		return resp, nil
	})

	// 5xx responses count against the breaker but are still handed back.
	var se *serverError
	if errors.As(err, &se) {
		return se.resp, nil
	}
	return resp, err
}

type serverError struct {
	resp *http.Response
}

func (e *serverError) Error() string {
	return "upstream returned " + e.resp.Status
}
