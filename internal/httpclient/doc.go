// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

/*
Package httpclient builds the outbound HTTP clients used by provider adapters.

A Client is bound to one service instance. It joins the configured base URL
and optional URL base, sets Accept: application/json, decorates each request
with provider credentials and logs every failed call with the redacted URL,
method, error and status. Requests are never retried.

	c, err := httpclient.New(httpclient.Options{
	    Provider: "overseerr",
	    BaseURL:  cfg.URL,
	    URLBase:  cfg.Settings.String("urlBase"),
	    Auth:     httpclient.HeaderAuth("X-Api-Key", cfg.APIKey),
	})
	var page requestPage
	err = c.Get(ctx, "/api/v1/request", nil, &page)

When Options.Breaker is set, calls go through a circuit breaker shared by
all clients targeting the same host. An open breaker fails fast with
gobreaker.ErrOpenState.
*/
package httpclient
