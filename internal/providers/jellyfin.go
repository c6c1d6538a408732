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

	"github.com/maintainarr/maintainarr/internal/apperrors"
	"github.com/maintainarr/maintainarr/internal/httpclient"
	"github.com/maintainarr/maintainarr/internal/models"
)

// JellyfinLibrary is one top-level view of a Jellyfin user.
type JellyfinLibrary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CollectionType string `json:"collectionType,omitempty"`
}

// JellyfinItem is one item inside a Jellyfin library.
type JellyfinItem struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	Year            int        `json:"year,omitempty"`
	CommunityRating float64    `json:"communityRating,omitempty"`
	DateCreated     *time.Time `json:"dateCreated,omitempty"`
	PlayCount       int        `json:"playCount"`
	Played          bool       `json:"played"`
	LastPlayedDate  *time.Time `json:"lastPlayedDate,omitempty"`
}

type jellyfinItemsResponse struct {
	Items []struct {
		ID              string     `json:"Id"`
		Name            string     `json:"Name"`
		Type            string     `json:"Type"`
		CollectionType  string     `json:"CollectionType"`
		ProductionYear  int        `json:"ProductionYear"`
		CommunityRating float64    `json:"CommunityRating"`
		DateCreated     *time.Time `json:"DateCreated"`
		UserData        *struct {
			PlayCount      int        `json:"PlayCount"`
			Played         bool       `json:"Played"`
			LastPlayedDate *time.Time `json:"LastPlayedDate"`
		} `json:"UserData"`
	} `json:"Items"`
	TotalRecordCount int `json:"TotalRecordCount"`
}

// Jellyfin reads user-scoped library data from a Jellyfin server.
type Jellyfin struct {
	client *httpclient.Client
	userID string
	logger zerolog.Logger
}

// NewJellyfin builds a Jellyfin adapter. settings.userId is required
// because every library endpoint is scoped to a user.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewJellyfin(cfg models.ProviderConfig, logger zerolog.Logger, opts ...Option) (*Jellyfin, error) {
	userID := cfg.Settings.String("userId")
	if userID == "" {
		return nil, apperrors.NewValidation("Jellyfin requires a userId setting",
			apperrors.FieldError{Field: "settings.userId", Message: "settings.userId is required for Jellyfin"})
	}

	o := buildOptions(opts)
	logger = adapterLogger(logger, "jellyfin")
	c, err := newClient(cfg, clientSpec{
		provider: "jellyfin",
		auth:     httpclient.HeaderAuth("X-Emby-Authorization", jellyfinAuthHeader(cfg.APIKey, o.version)),
	}, logger, o)
	if err != nil {
		return nil, err
	}
	return &Jellyfin{client: c, userID: userID, logger: logger}, nil
}

func jellyfinAuthHeader(token, version string) string {
	return fmt.Sprintf(`MediaBrowser Client="%s", Device="%s", DeviceId="maintainarr", Version="%s", Token="%s"`,
		ClientName, ClientName, version, token)
}

// GetLibraries lists the user's library views.
func (j *Jellyfin) GetLibraries(ctx context.Context) ([]JellyfinLibrary, error) {
	var resp jellyfinItemsResponse
	path := "/Users/" + url.PathEscape(j.userID) + "/Views"
	if err := j.client.Get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("jellyfin: failed to get libraries: %w", err)
	}

	out := make([]JellyfinLibrary, 0, len(resp.Items))
	for _, it := range resp.Items {
		out = append(out, JellyfinLibrary{ID: it.ID, Name: it.Name, CollectionType: it.CollectionType})
	}
	return out, nil
}

// GetLibraryContents lists the movies and series under libraryID.
func (j *Jellyfin) GetLibraryContents(ctx context.Context, libraryID string) ([]JellyfinItem, error) {
	q := url.Values{}
	q.Set("ParentId", libraryID)
	q.Set("Recursive", "true")
	q.Set("IncludeItemTypes", "Movie,Series")
	q.Set("Fields", "DateCreated,ProductionYear,CommunityRating")

	var resp jellyfinItemsResponse
	path := "/Users/" + url.PathEscape(j.userID) + "/Items"
	if err := j.client.Get(ctx, path, q, &resp); err != nil {
		return nil, fmt.Errorf("jellyfin: failed to get library %s contents: %w", libraryID, err)
	}

	out := make([]JellyfinItem, 0, len(resp.Items))
	for _, it := range resp.Items {
		item := JellyfinItem{
			ID:              it.ID,
			Name:            it.Name,
			Type:            it.Type,
			Year:            it.ProductionYear,
			CommunityRating: it.CommunityRating,
			DateCreated:     it.DateCreated,
		}
		if it.UserData != nil {
			item.PlayCount = it.UserData.PlayCount
			item.Played = it.UserData.Played
			item.LastPlayedDate = it.UserData.LastPlayedDate
		}
		out = append(out, item)
	}
	return out, nil
}
