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
	"golift.io/starr"
	"golift.io/starr/sonarr"

	"github.com/maintainarr/maintainarr/internal/httpclient"
	"github.com/maintainarr/maintainarr/internal/models"
)

// Series is the dashboard view of a Sonarr series.
type Series struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Year             int       `json:"year"`
	Status           string    `json:"status"`
	Monitored        bool      `json:"monitored"`
	Path             string    `json:"path"`
	QualityProfileID int64     `json:"qualityProfileId"`
	Tags             []int     `json:"tags"`
	TVDBID           int64     `json:"tvdbId"`
	IMDBID           string    `json:"imdbId,omitempty"`
	Added            time.Time `json:"added"`
	SeasonCount      int       `json:"seasonCount"`
	EpisodeCount     int       `json:"episodeCount"`
	EpisodeFileCount int       `json:"episodeFileCount"`
	SizeOnDisk       int64     `json:"sizeOnDisk"`
}

// QualityProfile is shared by Sonarr and Radarr.
type QualityProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RootFolder is shared by Sonarr and Radarr.
type RootFolder struct {
	ID         int64  `json:"id"`
	Path       string `json:"path"`
	Accessible bool   `json:"accessible"`
	FreeSpace  int64  `json:"freeSpace"`
}

// Tag is shared by Sonarr and Radarr.
type Tag struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// Sonarr reads series data from a Sonarr v3+ instance.
type Sonarr struct {
	api    *sonarr.Sonarr
	logger zerolog.Logger
}

// NewSonarr builds a Sonarr adapter. Requests authenticate with the
// apikey query parameter.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSonarr(cfg models.ProviderConfig, logger zerolog.Logger, opts ...Option) (*Sonarr, error) {
	logger = adapterLogger(logger, "sonarr")
	c, err := newClient(cfg, clientSpec{
		provider: "sonarr",
		auth:     httpclient.QueryAuth("apikey", cfg.APIKey),
	}, logger, buildOptions(opts))
	if err != nil {
		return nil, err
	}

	return &Sonarr{api: sonarr.New(starrConfig(c, cfg.APIKey)), logger: logger}, nil
}

// starrConfig points starr at the normalized base and hands it our
// decorated client.
func starrConfig(c *httpclient.Client, apiKey string) *starr.Config {
	sc := starr.New(apiKey, c.BaseURL(), c.HTTPClient().Timeout)
	sc.Client = c.HTTPClient()
	return sc
}

// GetSeries returns every series in the library.
func (s *Sonarr) GetSeries(ctx context.Context) ([]Series, error) {
	raw, err := s.api.GetAllSeriesContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("sonarr: failed to get series: %w", err)
	}

	out := make([]Series, 0, len(raw))
	for _, r := range raw {
		if r == nil {
			continue
		}
		item := Series{
			ID:               r.ID,
			Title:            r.Title,
			Year:             r.Year,
			Status:           r.Status,
			Monitored:        r.Monitored,
			Path:             r.Path,
			QualityProfileID: r.QualityProfileID,
			Tags:             r.Tags,
			TVDBID:           r.TvdbID,
			IMDBID:           r.ImdbID,
			Added:            r.Added,
		}
		if r.Statistics != nil {
			item.SeasonCount = r.Statistics.SeasonCount
			item.EpisodeCount = r.Statistics.EpisodeCount
			item.EpisodeFileCount = r.Statistics.EpisodeFileCount
			item.SizeOnDisk = r.Statistics.SizeOnDisk
		}
		out = append(out, item)
	}

	s.logger.Debug().Int("count", len(out)).Msg("Retrieved series")
	return out, nil
}

// GetProfiles returns the configured quality profiles.
func (s *Sonarr) GetProfiles(ctx context.Context) ([]QualityProfile, error) {
	raw, err := s.api.GetQualityProfilesContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("sonarr: failed to get quality profiles: %w", err)
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
func (s *Sonarr) GetRootFolders(ctx context.Context) ([]RootFolder, error) {
	raw, err := s.api.GetRootFoldersContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("sonarr: failed to get root folders: %w", err)
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
func (s *Sonarr) GetTags(ctx context.Context) ([]Tag, error) {
	raw, err := s.api.GetTagsContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("sonarr: failed to get tags: %w", err)
	}
	return convertTags(raw), nil
}

func convertTags(raw []*starr.Tag) []Tag {
	out := make([]Tag, 0, len(raw))
	for _, t := range raw {
		if t != nil {
			out = append(out, Tag{ID: t.ID, Label: t.Label})
		}
	}
	return out
}
