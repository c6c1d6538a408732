// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/maintainarr/maintainarr/internal/httpclient"
	"github.com/maintainarr/maintainarr/internal/models"
)

// TVMazeBaseURL is used when the provider config has no URL.
const TVMazeBaseURL = "https://api.tvmaze.com"

// The public API allows 20 calls every 10 seconds per IP.
var tvmazeLimiter = rate.NewLimiter(rate.Every(500*time.Millisecond), 20)

// TVMazeShow is a show as returned by TVMaze.
type TVMazeShow struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Premiered string   `json:"premiered,omitempty"`
	Status    string   `json:"status,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Rating    struct {
		Average *float64 `json:"average"`
	} `json:"rating"`
}

// Year returns the premiere year, or 0 when unknown.
func (s TVMazeShow) Year() int {
	return releaseYear(s.Premiered)
}

// TVMaze looks up shows on the keyless TVMaze API.
type TVMaze struct {
	client  *httpclient.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewTVMaze builds a TVMaze adapter.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewTVMaze(cfg models.ProviderConfig, logger zerolog.Logger, opts ...Option) (*TVMaze, error) {
	logger = adapterLogger(logger, models.SourceTVMaze)
	c, err := newClient(cfg, clientSpec{
		provider:   models.SourceTVMaze,
		defaultURL: TVMazeBaseURL,
	}, logger, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &TVMaze{client: c, limiter: tvmazeLimiter, logger: logger}, nil
}

func (t *TVMaze) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("tvmaze: rate limit wait: %w", err)
	}
	return t.client.Get(ctx, path, q, out)
}

// Search returns the shows matching query, best match first.
func (t *TVMaze) Search(ctx context.Context, query string) ([]TVMazeShow, error) {
	var resp []struct {
		Score float64    `json:"score"`
		Show  TVMazeShow `json:"show"`
	}
	if err := t.get(ctx, "/search/shows", url.Values{"q": {query}}, &resp); err != nil {
		return nil, fmt.Errorf("tvmaze: search failed: %w", err)
	}
	out := make([]TVMazeShow, 0, len(resp))
	for _, r := range resp {
		out = append(out, r.Show)
	}
	return out, nil
}

// GetShow loads a show by TVMaze id.
func (t *TVMaze) GetShow(ctx context.Context, id int64) (*TVMazeShow, error) {
	var show TVMazeShow
	if err := t.get(ctx, "/shows/"+strconv.FormatInt(id, 10), nil, &show); err != nil {
		return nil, fmt.Errorf("tvmaze: show %d: %w", id, err)
	}
	return &show, nil
}

// LookupRatings resolves title to a show rating. The first search hit
// wins unless several hits exist and one premiered in year.
func (t *TVMaze) LookupRatings(ctx context.Context, title string, year *int) (*models.TVMazeRating, error) {
	shows, err := t.Search(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(shows) == 0 {
		return &models.TVMazeRating{Source: models.SourceTVMaze}, nil
	}

	best := shows[0]
	if year != nil && len(shows) > 1 {
		for _, s := range shows {
			if s.Year() == *year {
				best = s
				break
			}
		}
	}

	if best.Rating.Average == nil {
		return &models.TVMazeRating{Source: models.SourceTVMaze}, nil
	}
	id := best.ID
	avg := *best.Rating.Average
	return &models.TVMazeRating{
		Source:   models.SourceTVMaze,
		Found:    true,
		TVMazeID: &id,
		Rating:   &avg,
	}, nil
}

// GetRatings is LookupRatings that never fails.
func (t *TVMaze) GetRatings(ctx context.Context, title string, year *int) *models.TVMazeRating {
	r, err := t.LookupRatings(ctx, title, year)
	if err != nil {
		ratingFailed(t.logger, models.SourceTVMaze, title, err)
		return &models.TVMazeRating{Source: models.SourceTVMaze}
	}
	ratingDone(models.SourceTVMaze, r.Found)
	return r
}
