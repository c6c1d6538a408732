// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golift.io/starr/radarr"

	"github.com/maintainarr/maintainarr/internal/httpclient"
	"github.com/maintainarr/maintainarr/internal/models"
)

// Movie is the dashboard view of a Radarr movie.
type Movie struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Year             int       `json:"year"`
	Status           string    `json:"status"`
	Monitored        bool      `json:"monitored"`
	HasFile          bool      `json:"hasFile"`
	Path             string    `json:"path"`
	QualityProfileID int64     `json:"qualityProfileId"`
	Tags             []int     `json:"tags"`
	TMDBID           int64     `json:"tmdbId"`
	IMDBID           string    `json:"imdbId,omitempty"`
	Added            time.Time `json:"added"`
	SizeOnDisk       int64     `json:"sizeOnDisk"`
}

// Radarr reads movie data from a Radarr v3+ instance.
type Radarr struct {
	api    *radarr.Radarr
	logger zerolog.Logger
}

// NewRadarr builds a Radarr adapter.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRadarr(cfg models.ProviderConfig, logger zerolog.Logger, opts ...Option) (*Radarr, error) {
	logger = adapterLogger(logger, "radarr")
	c, err := newClient(cfg, clientSpec{
		provider: "radarr",
		auth:     httpclient.QueryAuth("apikey", cfg.APIKey),
	}, logger, buildOptions(opts))
	if err != nil {
		return nil, err
	}

	return &Radarr{api: radarr.New(starrConfig(c, cfg.APIKey)), logger: logger}, nil
}

// GetMovies returns every movie in the library.
func (r *Radarr) GetMovies(ctx context.Context) ([]Movie, error) {
	raw, err := r.api.GetMovieContext(ctx, &radarr.GetMovie{})
	if err != nil {
		return nil, fmt.Errorf("radarr: failed to get movies: %w", err)
	}

	out := make([]Movie, 0, len(raw))
	for _, m := range raw {
		if m == nil {
			continue
		}
		out = append(out, Movie{
			ID:               m.ID,
			Title:            m.Title,
			Year:             m.Year,
			Status:           m.Status,
			Monitored:        m.Monitored,
			HasFile:          m.HasFile,
			Path:             m.Path,
			QualityProfileID: m.QualityProfileID,
			Tags:             m.Tags,
			TMDBID:           m.TmdbID,
			IMDBID:           m.ImdbID,
			Added:            m.Added,
			SizeOnDisk:       m.SizeOnDisk,
		})
	}

	r.logger.Debug().Int("count", len(out)).Msg("Retrieved movies")
	return out, nil
}

// GetProfiles returns the configured quality profiles.
func (r *Radarr) GetProfiles(ctx context.Context) ([]QualityProfile, error) {
	raw, err := r.api.GetQualityProfilesContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("radarr: failed to get quality profiles: %w", err)
	}
	out := make([]QualityProfile, 0, len(raw))
	for _, p := range raw {
		if p != nil {
			out = append(out, QualityProfile{ID: p.ID, Name: p.Name})
		}
	}
	return out, nil
}

// GetRootFolders returns the library root folders.
func (r *Radarr) GetRootFolders(ctx context.Context) ([]RootFolder, error) {
	raw, err := r.api.GetRootFoldersContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("radarr: failed to get root folders: %w", err)
	}
	out := make([]RootFolder, 0, len(raw))
	for _, f := range raw {
		if f != nil {
			out = append(out, RootFolder{ID: f.ID, Path: f.Path, Accessible: f.Accessible, FreeSpace: f.FreeSpace})
		}
	}
	return out, nil
}

// GetTags returns all tags.
func (r *Radarr) GetTags(ctx context.Context) ([]Tag, error) {
	raw, err := r.api.GetTagsContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("radarr: failed to get tags: %w", err)
	}
	return convertTags(raw), nil
}
