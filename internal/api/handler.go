// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package api

import (
	"context"
	"time"

	"github.com/maintainarr/maintainarr/internal/auth"
	"github.com/maintainarr/maintainarr/internal/config"
	"github.com/maintainarr/maintainarr/internal/database"
	"github.com/maintainarr/maintainarr/internal/models"
	"github.com/maintainarr/maintainarr/internal/ratings"
)

// Repository is the persistence the handlers use. *database.DB implements it.
type Repository interface {
	Ping(ctx context.Context) error

	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpsertPlexUser(ctx context.Context, acct database.PlexAccount) (*models.User, error)

	CreateProvider(ctx context.Context, p *models.ProviderConfig) error
	GetProvider(ctx context.Context, id int64) (*models.ProviderConfig, error)
	ListProviders(ctx context.Context, f database.ProviderFilter) ([]models.ProviderConfig, error)
	UpdateProvider(ctx context.Context, p *models.ProviderConfig) error
	DeleteProvider(ctx context.Context, id int64) error
}

// Dispatcher runs a provider's full method set. *providers.Factory
// implements it.
type Dispatcher interface {
	Dispatch(ctx context.Context, cfg models.ProviderConfig) (map[string]interface{}, error)
}

// RatingsLookup aggregates ratings for a title. *ratings.Service
// implements it.
type RatingsLookup interface {
	Lookup(ctx context.Context, q ratings.Query) (*models.AggregatedRatings, error)
}

// PlexVerifier resolves a Plex token to its account.
// *auth.PlexAuthenticator implements it.
type PlexVerifier interface {
	Verify(ctx context.Context, token string) (*database.PlexAccount, error)
}

// Dependencies wires a Handler.
type Dependencies struct {
	Config    *config.Config
	DB        Repository
	Providers Dispatcher
	Ratings   RatingsLookup
	Sessions  *auth.Manager
	Plex      PlexVerifier
}

// Handler serves the HTTP API.
type Handler struct {
	cfg       *config.Config
	db        Repository
	providers Dispatcher
	ratings   RatingsLookup
	sessions  *auth.Manager
	plex      PlexVerifier
	errors    ErrorResponder
	startTime time.Time
}

// NewHandler creates a Handler from deps.
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		cfg:       deps.Config,
		db:        deps.DB,
		providers: deps.Providers,
		ratings:   deps.Ratings,
		sessions:  deps.Sessions,
		plex:      deps.Plex,
		errors:    ErrorResponder{Production: deps.Config.IsProduction()},
		startTime: time.Now(),
	}
}
