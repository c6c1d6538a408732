// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/maintainarr/maintainarr/internal/apperrors"
	"github.com/maintainarr/maintainarr/internal/database"
	"github.com/maintainarr/maintainarr/internal/httpclient"
)

// PlexTVURL is the plex.tv API root.
const PlexTVURL = "https://plex.tv"

const plexAccountPath = "/users/account"

// PlexAuthenticator resolves a Plex auth token to the account that owns it.
type PlexAuthenticator struct {
	baseURL  string
	clientID string
	version  string
	timeout  time.Duration
}

// NewPlexAuthenticator creates an authenticator against plex.tv. baseURL
// overrides the API root when non-empty.
func NewPlexAuthenticator(baseURL, clientID, version string) *PlexAuthenticator {
	if baseURL == "" {
		baseURL = PlexTVURL
	}
	if clientID == "" {
		clientID = "maintainarr"
	}
	if version == "" {
		version = "1.0.0"
	}
	return &PlexAuthenticator{baseURL: baseURL, clientID: clientID, version: version, timeout: 10 * time.Second}
}

type plexAccountResponse struct {
	User struct {
		ID        int64  `json:"id"`
		UUID      string `json:"uuid"`
		Username  string `json:"username"`
		Title     string `json:"title"`
		Email     string `json:"email"`
		Thumb     string `json:"thumb"`
		AuthToken string `json:"authToken"`
	} `json:"user"`
}

// Verify asks plex.tv for the account behind token. A rejected token yields
// a 401 UnauthorizedError.
func (a *PlexAuthenticator) Verify(ctx context.Context, token string) (*database.PlexAccount, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.NewValidation("Invalid request",
			apperrors.FieldError{Field: "authToken", Message: "authToken is required"})
	}

	client, err := httpclient.New(httpclient.Options{
		Provider: "plextv",
		BaseURL:  a.baseURL,
		Timeout:  a.timeout,
		Auth:     httpclient.HeaderAuth("X-Plex-Token", token),
		Headers: map[string]string{
			"X-Plex-Client-Identifier": a.clientID,
			"X-Plex-Product":           "Maintainarr",
			"X-Plex-Version":           a.version,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("plex.tv client: %w", err)
	}

	var resp plexAccountResponse
	if err := client.Get(ctx, plexAccountPath, nil, &resp); err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) &&
			(statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden) {
			return nil, apperrors.NewUnauthorized("Invalid Plex token")
		}
		return nil, fmt.Errorf("failed to verify plex token: %w", err)
	}
	if resp.User.ID == 0 {
		return nil, apperrors.NewUnauthorized("Invalid Plex token")
	}

	username := resp.User.Username
	if username == "" {
		username = resp.User.Title
	}
	return &database.PlexAccount{
		PlexID:   resp.User.ID,
		Email:    resp.User.Email,
		Username: username,
		Avatar:   resp.User.Thumb,
		Token:    token,
	}, nil
}
