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

	"github.com/rs/zerolog"

	"github.com/maintainarr/maintainarr/internal/httpclient"
	"github.com/maintainarr/maintainarr/internal/models"
)

// TMDBBaseURL is used when the provider config has no URL.
const TMDBBaseURL = "https://api.themoviedb.org/3"

// TMDB media types returned by /search/multi.
const (
	TMDBMediaMovie = "movie"
	TMDBMediaTV    = "tv"
)

// TMDBSearchResult is a movie or TV hit from a multi search.
type TMDBSearchResult struct {
	ID          int64   `json:"id"`
	MediaType   string  `json:"mediaType"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
	VoteAverage float64 `json:"voteAverage"`
	VoteCount   int64   `json:"voteCount"`
	Popularity  float64 `json:"popularity"`
}

// Year returns the release (or first air) year, or 0 when unknown.
func (r TMDBSearchResult) Year() int {
	return releaseYear(r.ReleaseDate)
}

// TMDBMovieDetails holds the rating fields of a movie.
type TMDBMovieDetails struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	IMDBID      string  `json:"imdb_id"`
	Runtime     int     `json:"runtime"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
}

// TMDBTVDetails holds the rating fields of a TV show.
type TMDBTVDetails struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	FirstAirDate    string  `json:"first_air_date"`
	Status          string  `json:"status"`
	NumberOfSeasons int     `json:"number_of_seasons"`
	VoteAverage     float64 `json:"vote_average"`
	VoteCount       int64   `json:"vote_count"`
	Popularity      float64 `json:"popularity"`
}

type tmdbSearchResponse struct {
	Results []struct {
		ID           int64   `json:"id"`
		MediaType    string  `json:"media_type"`
		Title        string  `json:"title"`
		Name         string  `json:"name"`
		ReleaseDate  string  `json:"release_date"`
		FirstAirDate string  `json:"first_air_date"`
		VoteAverage  float64 `json:"vote_average"`
		VoteCount    int64   `json:"vote_count"`
		Popularity   float64 `json:"popularity"`
	} `json:"results"`
}

// TMDB looks up titles and ratings on The Movie Database.
type TMDB struct {
	client *httpclient.Client
	logger zerolog.Logger
}

// NewTMDB builds a TMDB adapter authenticated with the api_key query
// parameter.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewTMDB(cfg models.ProviderConfig, logger zerolog.Logger, opts ...Option) (*TMDB, error) {
	logger = adapterLogger(logger, models.SourceTMDB)
	c, err := newClient(cfg, clientSpec{
		provider:   models.SourceTMDB,
		defaultURL: TMDBBaseURL,
		auth:       httpclient.QueryAuth("api_key", cfg.APIKey),
	}, logger, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &TMDB{client: c, logger: logger}, nil
}

// Search runs a multi search and keeps movie and TV results.
func (t *TMDB) Search(ctx context.Context, query string) ([]TMDBSearchResult, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("include_adult", "false")

	var resp tmdbSearchResponse
	if err := t.client.Get(ctx, "/search/multi", q, &resp); err != nil {
		return nil, fmt.Errorf("tmdb: search failed: %w", err)
	}

	out := make([]TMDBSearchResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		res := TMDBSearchResult{
			ID:          r.ID,
			MediaType:   r.MediaType,
			VoteAverage: r.VoteAverage,
			VoteCount:   r.VoteCount,
			Popularity:  r.Popularity,
		}
		switch r.MediaType {
		case TMDBMediaMovie:
			res.Title, res.ReleaseDate = r.Title, r.ReleaseDate
		case TMDBMediaTV:
			res.Title, res.ReleaseDate = r.Name, r.FirstAirDate
		default:
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

// GetMovieDetails loads a movie by TMDB id.
func (t *TMDB) GetMovieDetails(ctx context.Context, id int64) (*TMDBMovieDetails, error) {
	var d TMDBMovieDetails
	if err := t.client.Get(ctx, "/movie/"+strconv.FormatInt(id, 10), nil, &d); err != nil {
		return nil, fmt.Errorf("tmdb: movie %d: %w", id, err)
	}
	return &d, nil
}

// GetTvDetails loads a TV show by TMDB id.
func (t *TMDB) GetTvDetails(ctx context.Context, id int64) (*TMDBTVDetails, error) {
	var d TMDBTVDetails
	if err := t.client.Get(ctx, "/tv/"+strconv.FormatInt(id, 10), nil, &d); err != nil {
		return nil, fmt.Errorf("tmdb: tv %d: %w", id, err)
	}
	return &d, nil
}

// LookupRatings resolves title (and optional year) to a rating. A title
// without search hits is found=false with a nil error.
func (t *TMDB) LookupRatings(ctx context.Context, title string, year *int) (*models.TMDBRating, error) {
	results, err := t.Search(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &models.TMDBRating{Source: models.SourceTMDB}, nil
	}

	best := results[0]
	if year != nil {
		for _, r := range results {
			if r.Year() == *year {
				best = r
				break
			}
		}
	}

	rating := &models.TMDBRating{
		Source:    models.SourceTMDB,
		Found:     true,
		TMDBID:    &best.ID,
		MediaType: best.MediaType,
	}
	if best.MediaType == TMDBMediaMovie {
		d, err := t.GetMovieDetails(ctx, best.ID)
		if err != nil {
			return nil, err
		}
		rating.MovieRating = &d.VoteAverage
		rating.VoteCount = &d.VoteCount
		rating.Popularity = &d.Popularity
	} else {
		d, err := t.GetTvDetails(ctx, best.ID)
		if err != nil {
			return nil, err
		}
		rating.TVRating = &d.VoteAverage
		rating.VoteCount = &d.VoteCount
		rating.Popularity = &d.Popularity
	}
	return rating, nil
}

// GetRatings is LookupRatings that never fails: errors are logged and
// reported as found=false.
func (t *TMDB) GetRatings(ctx context.Context, title string, year *int) *models.TMDBRating {
	r, err := t.LookupRatings(ctx, title, year)
	if err != nil {
		ratingFailed(t.logger, models.SourceTMDB, title, err)
		return &models.TMDBRating{Source: models.SourceTMDB}
	}
	ratingDone(models.SourceTMDB, r.Found)
	return r
}
