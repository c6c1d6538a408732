// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/maintainarr/maintainarr/docs"
	"github.com/maintainarr/maintainarr/internal/api"
	"github.com/maintainarr/maintainarr/internal/auth"
	"github.com/maintainarr/maintainarr/internal/authz"
	"github.com/maintainarr/maintainarr/internal/cache"
	"github.com/maintainarr/maintainarr/internal/config"
	"github.com/maintainarr/maintainarr/internal/database"
	"github.com/maintainarr/maintainarr/internal/logging"
	"github.com/maintainarr/maintainarr/internal/providers"
	"github.com/maintainarr/maintainarr/internal/ratings"
	"github.com/maintainarr/maintainarr/internal/supervisor"
	"github.com/maintainarr/maintainarr/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Dir:    cfg.Logging.Dir,
		Caller: cfg.Logging.Caller,
	})
	defer func() { _ = logging.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		_ = logging.Close()
		os.Exit(1)
	}
	logging.Info().Msg("Application stopped gracefully")
}

// app is everything run needs after wiring.
type app struct {
	handler  http.Handler
	sessions *auth.SQLStore
	ratings  *cache.Cache
}

// buildApp wires the HTTP handler against an open database.
func buildApp(cfg *config.Config, db *database.DB) (*app, error) {
	factory := providers.NewFactory(logging.WithComponent("providers"),
		providers.WithTimeout(cfg.Providers.Timeout),
		providers.WithBreaker(cfg.Providers.BreakerEnabled),
		providers.WithClientVersion(cfg.Version()),
	)

	ratingsCache := cache.New("ratings", cfg.Providers.RatingsCacheTTL)
	ratingsSvc := ratings.NewService(factory, ratingsCache, cfg.Providers.TMDBAPIKey)

	signer, err := auth.NewCookieSigner(cfg.Session.Secret)
	if err != nil {
		ratingsCache.Close()
		return nil, err
	}
	store := auth.NewSQLStore(db, cfg.Session.TTL, cfg.Session.PurgeBatch)
	sessions := auth.NewManager(store, signer, auth.ManagerConfig{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.IsProduction(),
	})

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		ratingsCache.Close()
		return nil, fmt.Errorf("failed to load authorization policy: %w", err)
	}

	h := api.NewHandler(api.Dependencies{
		Config:    cfg,
		DB:        db,
		Providers: factory,
		Ratings:   ratingsSvc,
		Sessions:  sessions,
		Plex:      auth.NewPlexAuthenticator("", "maintainarr-"+cfg.Env, cfg.Version()),
	})

	return &app{
		handler:  api.NewRouter(h, enforcer),
		sessions: store,
		ratings:  ratingsCache,
	}, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	logging.Info().
		Str("env", cfg.Env).
		Str("version", cfg.Version()).
		Str("db_path", cfg.Database.Path).
		Msg("Starting Maintainarr")

	secrets, err := config.NewCredentialEncryptor(cfg.Session.Secret)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database, secrets)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	a, err := buildApp(cfg, db)
	if err != nil {
		return err
	}
	defer a.ratings.Close()

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           a.handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddMaintenanceService(services.NewSessionSweeper(a.sessions, 0))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("Server listening")

	err = <-tree.ServeBackground(ctx)

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}
	return nil
}
