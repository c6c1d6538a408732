// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package providers

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/maintainarr/maintainarr/internal/logging"
	"github.com/maintainarr/maintainarr/internal/models"
)

// Factory builds adapters with shared client options.
type Factory struct {
	logger zerolog.Logger
	opts   []Option
}

// NewFactory returns a Factory whose adapters log through logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewFactory(logger zerolog.Logger, opts ...Option) *Factory {
	return &Factory{logger: logger, opts: opts}
}

func (f *Factory) loggerFor(ctx context.Context) zerolog.Logger {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return f.logger.With().Str("request_id", id).Logger()
	}
	return f.logger
}

// TMDB builds a TMDB adapter for apiKey.
func (f *Factory) TMDB(ctx context.Context, apiKey string) (*TMDB, error) {
	cfg := models.NewAdHocProviderConfig(models.ProviderTMDB, "", apiKey, nil)
	return NewTMDB(cfg, f.loggerFor(ctx), f.opts...)
}

// OMDB builds an OMDB adapter for apiKey.
func (f *Factory) OMDB(ctx context.Context, apiKey string) (*OMDB, error) {
	cfg := models.NewAdHocProviderConfig(models.ProviderOMDB, "", apiKey, nil)
	return NewOMDB(cfg, f.loggerFor(ctx), f.opts...)
}

// TVMaze builds a TVMaze adapter.
func (f *Factory) TVMaze(ctx context.Context) (*TVMaze, error) {
	cfg := models.NewAdHocProviderConfig(models.ProviderTVMaze, "", "", nil)
	return NewTVMaze(cfg, f.loggerFor(ctx), f.opts...)
}

type fetchFunc func(ctx context.Context) (interface{}, error)

// Dispatch runs the full method set of the adapter for cfg.Type
// concurrently and returns the results by name. The first failing call
// cancels its siblings and fails the whole dispatch. Rating sources are
// not dispatched and yield a nil map.
func (f *Factory) Dispatch(ctx context.Context, cfg models.ProviderConfig) (map[string]interface{}, error) {
	logger := f.loggerFor(ctx)
	calls := map[string]fetchFunc{}

	switch cfg.Type {
	case models.ProviderSonarr:
		a, err := NewSonarr(cfg, logger, f.opts...)
		if err != nil {
			return nil, err
		}
		calls["series"] = func(ctx context.Context) (interface{}, error) { return a.GetSeries(ctx) }
		calls["qualityProfiles"] = func(ctx context.Context) (interface{}, error) { return a.GetProfiles(ctx) }
		calls["rootFolders"] = func(ctx context.Context) (interface{}, error) { return a.GetRootFolders(ctx) }
		calls["tags"] = func(ctx context.Context) (interface{}, error) { return a.GetTags(ctx) }

	case models.ProviderRadarr:
		a, err := NewRadarr(cfg, logger, f.opts...)
		if err != nil {
			return nil, err
		}
		calls["movies"] = func(ctx context.Context) (interface{}, error) { return a.GetMovies(ctx) }
		calls["qualityProfiles"] = func(ctx context.Context) (interface{}, error) { return a.GetProfiles(ctx) }
		calls["rootFolders"] = func(ctx context.Context) (interface{}, error) { return a.GetRootFolders(ctx) }
		calls["tags"] = func(ctx context.Context) (interface{}, error) { return a.GetTags(ctx) }

	case models.ProviderPlex:
		a, err := NewPlex(cfg, logger, f.opts...)
		if err != nil {
			return nil, err
		}
		calls["libraries"] = func(ctx context.Context) (interface{}, error) { return a.GetLibraries(ctx) }
		if key := cfg.Settings.String("libraryKey"); key != "" {
			calls["contents"] = func(ctx context.Context) (interface{}, error) { return a.GetLibraryContents(ctx, key) }
		}

	case models.ProviderJellyfin:
		a, err := NewJellyfin(cfg, logger, f.opts...)
		if err != nil {
			return nil, err
		}
		calls["libraries"] = func(ctx context.Context) (interface{}, error) { return a.GetLibraries(ctx) }
		if id := cfg.Settings.String("libraryId"); id != "" {
			calls["contents"] = func(ctx context.Context) (interface{}, error) { return a.GetLibraryContents(ctx, id) }
		}

	case models.ProviderTautulli:
		a, err := NewTautulli(cfg, logger, f.opts...)
		if err != nil {
			return nil, err
		}
		calls["libraryStats"] = func(ctx context.Context) (interface{}, error) { return a.GetLibraryStats(ctx) }
		calls["homeStats"] = func(ctx context.Context) (interface{}, error) { return a.GetHomeStats(ctx) }
		calls["history"] = func(ctx context.Context) (interface{}, error) { return a.GetHistory(ctx) }

	case models.ProviderOverseerr, models.ProviderSeerr:
		a, err := NewOverseerr(cfg, logger, f.opts...)
		if err != nil {
			return nil, err
		}
		calls["requests"] = func(ctx context.Context) (interface{}, error) { return a.GetRequests(ctx) }

	default:
		logger.Debug().Str("type", string(cfg.Type)).Msg("Provider type has no metadata dispatch")
		return nil, nil
	}

	return fanOut(ctx, calls)
}

func fanOut(ctx context.Context, calls map[string]fetchFunc) (map[string]interface{}, error) {
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[string]interface{}, len(calls))
	for key, call := range calls {
		g.Go(func() error {
			v, err := call(gctx)
			if err != nil {
				return err
			}
			mu.Lock()
			results[key] = v
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
