// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package providers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maintainarr/maintainarr/internal/apperrors"
	"github.com/maintainarr/maintainarr/internal/httpclient"
	"github.com/maintainarr/maintainarr/internal/metrics"
	"github.com/maintainarr/maintainarr/internal/models"
)

// ClientName identifies Maintainarr to services that ask for a client name.
const ClientName = "Maintainarr"

// Option tunes how adapters build their HTTP clients.
type Option func(*options)

type options struct {
	timeout time.Duration
	breaker bool
	version string
}

// WithTimeout overrides the outbound request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithBreaker enables the per-host circuit breaker.
func WithBreaker(enabled bool) Option {
	return func(o *options) { o.breaker = enabled }
}

// WithClientVersion sets the version reported to Jellyfin.
func WithClientVersion(v string) Option {
	return func(o *options) { o.version = v }
}

func buildOptions(opts []Option) options {
	o := options{timeout: httpclient.DefaultTimeout, version: "1.0.0"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// clientSpec describes how one adapter talks to its service.
type clientSpec struct {
	provider   string
	defaultURL string
	auth       httpclient.AuthFunc
	headers    map[string]string
}

// newClient builds the provider's HTTP client from cfg. A blank cfg.URL
// falls back to spec.defaultURL for hosted rating sources.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newClient(cfg models.ProviderConfig, spec clientSpec, logger zerolog.Logger, o options) (*httpclient.Client, error) {
	baseURL := cfg.URL
	if strings.TrimSpace(baseURL) == "" {
		baseURL = spec.defaultURL
	}

	c, err := httpclient.New(httpclient.Options{
		Provider: spec.provider,
		BaseURL:  baseURL,
		URLBase:  cfg.Settings.String("urlBase"),
		Timeout:  o.timeout,
		Auth:     spec.auth,
		Headers:  spec.headers,
		Breaker:  o.breaker,
		Logger:   &logger,
	})
	if err != nil {
		if errors.Is(err, httpclient.ErrInvalidBaseURL) {
			return nil, apperrors.NewValidation("Invalid provider URL",
				apperrors.FieldError{Field: "url", Message: "url must be an http(s) URL"})
		}
		return nil, apperrors.Wrap(err, "Failed to build "+spec.provider+" client")
	}
	return c, nil
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func adapterLogger(logger zerolog.Logger, provider string) zerolog.Logger {
	return logger.With().Str("provider", provider).Logger()
}

// releaseYear extracts the leading year of an ISO date such as "2008-01-20".
func releaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}

// flexInt decodes JSON numbers that some services send as strings.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	*f = flexInt(v)
	return nil
}

// flexStr decodes JSON values that may be either strings or numbers.
type flexStr string

func (f *flexStr) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*f = ""
		return nil
	}
	*f = flexStr(strings.Trim(s, `"`))
	return nil
}

// Rating lookup outcomes recorded in metrics.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ratingFailed(logger zerolog.Logger, source, title string, err error) {
	logger.Warn().Err(err).Str("source", source).Str("title", title).Msg("Rating lookup failed")
	metrics.RecordRatingLookup(source, outcomeError)
}

func ratingDone(source string, found bool) {
	if found {
		metrics.RecordRatingLookup(source, outcomeFound)
		return
	}
	metrics.RecordRatingLookup(source, outcomeNotFound)
}
