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
	"strings"

	"github.com/rs/zerolog"

	"github.com/maintainarr/maintainarr/internal/httpclient"
	"github.com/maintainarr/maintainarr/internal/models"
)

// OMDBBaseURL is used when the provider config has no URL.
const OMDBBaseURL = "https://www.omdbapi.com"

type omdbResponse struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	IMDBID     string `json:"imdbID"`
	IMDBRating string `json:"imdbRating"`
	IMDBVotes  string `json:"imdbVotes"`
	Ratings    []struct {
		Source string `json:"Source"`
		Value  string `json:"Value"`
	} `json:"Ratings"`
}

// OMDB looks up IMDb, Rotten Tomatoes and Metacritic scores.
type OMDB struct {
	client *httpclient.Client
	logger zerolog.Logger
}

// NewOMDB builds an OMDB adapter authenticated with the apikey query
// parameter.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewOMDB(cfg models.ProviderConfig, logger zerolog.Logger, opts ...Option) (*OMDB, error) {
	logger = adapterLogger(logger, models.SourceOMDB)
	c, err := newClient(cfg, clientSpec{
		provider:   models.SourceOMDB,
		defaultURL: OMDBBaseURL,
		auth:       httpclient.QueryAuth("apikey", cfg.APIKey),
	}, logger, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &OMDB{client: c, logger: logger}, nil
}

func (o *OMDB) fetch(ctx context.Context, title string, year *int, kind string) (*omdbResponse, error) {
	q := url.Values{}
	q.Set("t", title)
	q.Set("type", kind)
	if year != nil {
		q.Set("y", strconv.Itoa(*year))
	}

	var resp omdbResponse
	if err := o.client.Get(ctx, "/", q, &resp); err != nil {
		return nil, fmt.Errorf("omdb: %s lookup failed: %w", kind, err)
	}
	return &resp, nil
}

// LookupRatings tries a movie lookup, then a series lookup.
func (o *OMDB) LookupRatings(ctx context.Context, title string, year *int) (*models.OMDBRating, error) {
	var resp *omdbResponse
	for _, kind := range []string{"movie", "series"} {
		r, err := o.fetch(ctx, title, year, kind)
		if err != nil {
			return nil, err
		}
		if r.Response == "True" {
			resp = r
			break
		}
		o.logger.Debug().Str("title", title).Str("type", kind).Str("reason", r.Error).Msg("No OMDB match")
	}
	if resp == nil {
		return &models.OMDBRating{Source: models.SourceOMDB}, nil
	}

	rating := &models.OMDBRating{
		Source:     models.SourceOMDB,
		Found:      true,
		IMDBID:     resp.IMDBID,
		IMDBRating: parseOMDBFloat(resp.IMDBRating),
		IMDBVotes:  parseOMDBVotes(resp.IMDBVotes),
	}
	for _, r := range resp.Ratings {
		switch {
		case strings.Contains(r.Source, "Rotten Tomatoes"):
			rating.RottenTomatoes = parseScore(r.Value, "%")
		case strings.Contains(r.Source, "Metacritic"):
			rating.Metacritic = parseScore(r.Value, "/100")
		}
	}
	return rating, nil
}

// GetRatings is LookupRatings that never fails.
func (o *OMDB) GetRatings(ctx context.Context, title string, year *int) *models.OMDBRating {
	r, err := o.LookupRatings(ctx, title, year)
	if err != nil {
		ratingFailed(o.logger, models.SourceOMDB, title, err)
		return &models.OMDBRating{Source: models.SourceOMDB}
	}
	ratingDone(models.SourceOMDB, r.Found)
	return r
}

// parseOMDBFloat returns nil for "N/A" and other non-numeric values.
func parseOMDBFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseOMDBVotes(s string) *int64 {
	v, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseScore parses values like "93%" or "80/100".
func parseScore(value, suffix string) *int {
	s := strings.TrimSpace(value)
	if !strings.HasSuffix(s, suffix) {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSuffix(s, suffix))
	if err != nil {
		return nil
	}
	return &v
}
