// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package providers

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/maintainarr/maintainarr/internal/httpclient"
	"github.com/maintainarr/maintainarr/internal/models"
)

// PlexLibrary is one library section on a Plex Media Server.
type PlexLibrary struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Agent     string    `json:"agent,omitempty"`
	Locations []string  `json:"locations"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlexMediaItem is one item of a library section.
type PlexMediaItem struct {
	RatingKey    string     `json:"ratingKey"`
	Title        string     `json:"title"`
	Type         string     `json:"type"`
	Year         int        `json:"year,omitempty"`
	Rating       float64    `json:"rating,omitempty"`
	ViewCount    int        `json:"viewCount"`
	AddedAt      time.Time  `json:"addedAt"`
	LastViewedAt *time.Time `json:"lastViewedAt,omitempty"`
	DurationMs   int64      `json:"duration,omitempty"`
}

type plexSectionsResponse struct {
	MediaContainer struct {
		Directory []struct {
			Key       string `json:"key"`
			Title     string `json:"title"`
			Type      string `json:"type"`
			Agent     string `json:"agent"`
			UpdatedAt int64  `json:"updatedAt"`
			Location  []struct {
				Path string `json:"path"`
			} `json:"Location"`
		} `json:"Directory"`
	} `json:"MediaContainer"`
}

type plexContentsResponse struct {
	MediaContainer struct {
		Metadata []struct {
			RatingKey      string  `json:"ratingKey"`
			Title          string  `json:"title"`
			Type           string  `json:"type"`
			Year           int     `json:"year"`
			Rating         float64 `json:"rating"`
			AudienceRating float64 `json:"audienceRating"`
			ViewCount      int     `json:"viewCount"`
			AddedAt        int64   `json:"addedAt"`
			LastViewedAt   int64   `json:"lastViewedAt"`
			Duration       int64   `json:"duration"`
		} `json:"Metadata"`
	} `json:"MediaContainer"`
}

// Plex reads library data from a Plex Media Server.
type Plex struct {
	client *httpclient.Client
	logger zerolog.Logger
}

// NewPlex builds a Plex adapter authenticated with X-Plex-Token.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewPlex(cfg models.ProviderConfig, logger zerolog.Logger, opts ...Option) (*Plex, error) {
	logger = adapterLogger(logger, "plex")
	c, err := newClient(cfg, clientSpec{
		provider: "plex",
		auth:     httpclient.HeaderAuth("X-Plex-Token", cfg.APIKey),
		headers:  map[string]string{"X-Plex-Product": ClientName},
	}, logger, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Plex{client: c, logger: logger}, nil
}

// GetLibraries lists the server's library sections.
func (p *Plex) GetLibraries(ctx context.Context) ([]PlexLibrary, error) {
	var resp plexSectionsResponse
	if err := p.client.Get(ctx, "/library/sections", nil, &resp); err != nil {
		return nil, fmt.Errorf("plex: failed to get libraries: %w", err)
	}

	out := make([]PlexLibrary, 0, len(resp.MediaContainer.Directory))
	for _, d := range resp.MediaContainer.Directory {
		lib := PlexLibrary{
			Key:       d.Key,
			Title:     d.Title,
			Type:      d.Type,
			Agent:     d.Agent,
			Locations: make([]string, 0, len(d.Location)),
			UpdatedAt: time.Unix(d.UpdatedAt, 0).UTC(),
		}
		for _, loc := range d.Location {
			lib.Locations = append(lib.Locations, loc.Path)
		}
		out = append(out, lib)
	}
	return out, nil
}

// GetLibraryContents lists every item of the library section with key.
func (p *Plex) GetLibraryContents(ctx context.Context, key string) ([]PlexMediaItem, error) {
	var resp plexContentsResponse
	path := "/library/sections/" + url.PathEscape(key) + "/all"
	if err := p.client.Get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("plex: failed to get library %s contents: %w", key, err)
	}

	out := make([]PlexMediaItem, 0, len(resp.MediaContainer.Metadata))
	for _, m := range resp.MediaContainer.Metadata {
		item := PlexMediaItem{
			RatingKey:  m.RatingKey,
			Title:      m.Title,
			Type:       m.Type,
			Year:       m.Year,
			Rating:     m.AudienceRating,
			ViewCount:  m.ViewCount,
			AddedAt:    time.Unix(m.AddedAt, 0).UTC(),
			DurationMs: m.Duration,
		}
		if item.Rating == 0 {
			item.Rating = m.Rating
		}
		if m.LastViewedAt > 0 {
			t := time.Unix(m.LastViewedAt, 0).UTC()
			item.LastViewedAt = &t
		}
		out = append(out, item)
	}
	return out, nil
}
