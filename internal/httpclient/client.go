// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/maintainarr/maintainarr/internal/logging"
)

// DefaultTimeout bounds every outbound provider request.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 64 * 1024

// ErrInvalidBaseURL is returned when the configured URL cannot be used.
var ErrInvalidBaseURL = errors.New("invalid base URL")

// AuthFunc decorates an outbound request with provider credentials.
type AuthFunc func(req *http.Request)

// HeaderAuth sets a fixed header on every request.
func HeaderAuth(name, value string) AuthFunc {
	return func(req *http.Request) {
		req.Header.Set(name, value)
	}
}

// QueryAuth adds a fixed query parameter to every request.
func QueryAuth(name, value string) AuthFunc {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Set(name, value)
		req.URL.RawQuery = q.Encode()
	}
}

// Options configures a Client.
type Options struct {
	// Provider labels logs and metrics, e.g. "sonarr".
	Provider string

	// BaseURL is the scheme and host of the service, optionally with a path.
	BaseURL string

	// URLBase is an extra path prefix (reverse-proxy sub path) appended to
	// BaseURL. Leading and trailing slashes are ignored.
	URLBase string

	// Timeout defaults to DefaultTimeout.
	Timeout time.Duration

	Auth    AuthFunc
	Headers map[string]string

	// Breaker routes requests through the per-host circuit breaker.
	Breaker bool

	// Logger receives failure diagnostics. Defaults to the global logger
	// with component=httpclient.
	Logger *zerolog.Logger
}

// Client issues JSON requests against one provider instance. It never
// retries: a failed request fails the caller immediately.
type Client struct {
	provider string
	base     string
	http     *http.Client
}

// New builds a Client from opts.
func New(opts Options) (*Client, error) {
	base, err := NormalizeBase(opts.BaseURL, opts.URLBase)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	logger := logging.WithComponent("httpclient")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	host := ""
	if u, perr := url.Parse(base); perr == nil {
		host = u.Host
	}

	t := &transport{
		next:     http.DefaultTransport,
		provider: opts.Provider,
		auth:     opts.Auth,
		headers:  opts.Headers,
		logger:   logger,
	}
	if opts.Breaker {
		t.breaker = breakerFor(host)
	}

	return &Client{
		provider: opts.Provider,
		base:     base,
		http:     &http.Client{Timeout: timeout, Transport: t},
	}, nil
}

// NormalizeBase joins baseURL and urlBase into a prefix without a trailing
// slash, e.g. ("http://host:8989/", "/sonarr/") -> "http://host:8989/sonarr".
func NormalizeBase(baseURL, urlBase string) (string, error) {
	raw := strings.TrimSpace(baseURL)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	base := strings.TrimRight(raw, "/")
	if sub := strings.Trim(strings.TrimSpace(urlBase), "/"); sub != "" {
		base += "/" + sub
	}
	return base, nil
}

// BaseURL returns the normalized prefix applied to every request.
func (c *Client) BaseURL() string {
	return c.base
}

// HTTPClient exposes the decorated *http.Client for SDKs that build their
// own URLs. Auth, Accept, breaker and failure logging still apply.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// Get requests base+path with query and decodes the JSON body into out.
// Non-2xx responses are returned as *StatusError.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	reqURL := c.base + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", c.provider, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", c.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Provider:   c.provider,
			Method:     req.Method,
			URL:        redactURL(req.URL),
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", c.provider, err)
	}
	return nil
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Provider   string
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: %s %s returned status %d: %s", e.Provider, e.Method, e.URL, e.StatusCode, truncate(e.Body, 200))
	}
	return fmt.Sprintf("%s: %s %s returned status %d", e.Provider, e.Method, e.URL, e.StatusCode)
}

// sensitiveParams are removed from URLs before they reach logs or errors.
var sensitiveParams = []string{"apikey", "api_key", "X-Plex-Token", "token"}

func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	clean := *u
	q := clean.Query()
	for _, p := range sensitiveParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
		}
	}
	clean.RawQuery = q.Encode()
	return clean.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
