// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package ratings

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/maintainarr/maintainarr/internal/cache"
	"github.com/maintainarr/maintainarr/internal/logging"
	"github.com/maintainarr/maintainarr/internal/models"
	"github.com/maintainarr/maintainarr/internal/providers"
)

// Query selects a title and the credentials for the keyed sources.
type Query struct {
	Title      string
	Year       *int
	TMDBAPIKey string
	OMDBAPIKey string
}

// Source builds rating adapters. *providers.Factory implements it.
type Source interface {
	TMDB(ctx context.Context, apiKey string) (*providers.TMDB, error)
	OMDB(ctx context.Context, apiKey string) (*providers.OMDB, error)
	TVMaze(ctx context.Context) (*providers.TVMaze, error)
}

// Service queries the rating sources concurrently and caches per-source
// results.
type Service struct {
	source         Source
	cache          *cache.Cache
	defaultTMDBKey string
}

// NewService returns a Service. c may be nil to disable caching.
// defaultTMDBKey is used when a query carries no TMDB key.
func NewService(source Source, c *cache.Cache, defaultTMDBKey string) *Service {
	return &Service{
		source:         source,
		cache:          c,
		defaultTMDBKey: defaultTMDBKey,
	}
}

// Lookup aggregates the sources that can run for q: TMDB and OMDB only
// with an API key, TVMaze always. Lookup never fails because of a source;
// it only returns an error when ctx is done.
func (s *Service) Lookup(ctx context.Context, q Query) (*models.AggregatedRatings, error) {
	tmdbKey := strings.TrimSpace(q.TMDBAPIKey)
	if tmdbKey == "" {
		tmdbKey = s.defaultTMDBKey
	}
	omdbKey := strings.TrimSpace(q.OMDBAPIKey)

	var (
		tmdb   *models.TMDBRating
		omdb   *models.OMDBRating
		tvmaze *models.TVMazeRating
	)

	g, gctx := errgroup.WithContext(ctx)
	if tmdbKey != "" {
		g.Go(func() error {
			tmdb = lookupCached(gctx, s, models.SourceTMDB, q, tmdbKey, &models.TMDBRating{Source: models.SourceTMDB},
				func() (*models.TMDBRating, error) {
					a, err := s.source.TMDB(gctx, tmdbKey)
					if err != nil {
						return nil, err
					}
					return a.GetRatings(gctx, q.Title, q.Year), nil
				},
				func(r *models.TMDBRating) bool { return r.Found })
			return nil
		})
	}
	if omdbKey != "" {
		g.Go(func() error {
			omdb = lookupCached(gctx, s, models.SourceOMDB, q, omdbKey, &models.OMDBRating{Source: models.SourceOMDB},
				func() (*models.OMDBRating, error) {
					a, err := s.source.OMDB(gctx, omdbKey)
					if err != nil {
						return nil, err
					}
					return a.GetRatings(gctx, q.Title, q.Year), nil
				},
				func(r *models.OMDBRating) bool { return r.Found })
			return nil
		})
	}
	g.Go(func() error {
		tvmaze = lookupCached(gctx, s, models.SourceTVMaze, q, "", &models.TVMazeRating{Source: models.SourceTVMaze},
			func() (*models.TVMazeRating, error) {
				a, err := s.source.TVMaze(gctx)
				if err != nil {
					return nil, err
				}
				return a.GetRatings(gctx, q.Title, q.Year), nil
			},
			func(r *models.TVMazeRating) bool { return r.Found })
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agg := Aggregate(q.Title, q.Year, tmdb, omdb, tvmaze)
	return &agg, nil
}

// lookupCached returns the cached result for source, or runs lookup.
// lookup goes through the adapter's fail-soft GetRatings, which logs and
// counts the outcome; only found results are cached. An adapter that cannot
// be built is logged and reported as miss.
func lookupCached[T any](ctx context.Context, s *Service, source string, q Query, apiKey string, miss T,
	lookup func() (T, error), found func(T) bool) T {
	key := cacheKey(source, q, apiKey)
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			if r, ok := v.(T); ok {
				return r
			}
		}
	}

	r, err := lookup()
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("source", source).Msg("Rating source unavailable")
		return miss
	}
	if s.cache != nil && found(r) {
		s.cache.Set(key, r)
	}
	return r
}

// cacheKey identifies a lookup by source, normalized title, year and a
// fingerprint of the API key the result was fetched with.
func cacheKey(source string, q Query, apiKey string) string {
	year := 0
	if q.Year != nil {
		year = *q.Year
	}
	params := map[string]interface{}{
		"title": strings.ToLower(strings.TrimSpace(q.Title)),
		"year":  year,
	}
	if apiKey != "" {
		params["key"] = keyFingerprint(apiKey)
	}
	return cache.GenerateKey(source, params)
}

func keyFingerprint(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:8])
}
