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
	"time"

	"github.com/rs/zerolog"

	"github.com/maintainarr/maintainarr/internal/httpclient"
	"github.com/maintainarr/maintainarr/internal/models"
)

// requestPageSize is the number of requests fetched per call.
const requestPageSize = 100

// MediaRequest is one Overseerr (or Seerr) media request.
type MediaRequest struct {
	ID          int64     `json:"id"`
	Status      string    `json:"status"`
	MediaType   string    `json:"mediaType"`
	TMDBID      int64     `json:"tmdbId,omitempty"`
	TVDBID      int64     `json:"tvdbId,omitempty"`
	Is4K        bool      `json:"is4k"`
	RequestedBy string    `json:"requestedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RequestPage is the first page of requests plus the server's totals.
type RequestPage struct {
	Total    int            `json:"total"`
	Pages    int            `json:"pages"`
	Requests []MediaRequest `json:"requests"`
}

type overseerrRequestsResponse struct {
	PageInfo struct {
		Pages   int `json:"pages"`
		Results int `json:"results"`
	} `json:"pageInfo"`
	Results []struct {
		ID        int64     `json:"id"`
		Status    int       `json:"status"`
		Type      string    `json:"type"`
		Is4K      bool      `json:"is4k"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
		Media     *struct {
			TMDBID int64 `json:"tmdbId"`
			TVDBID int64 `json:"tvdbId"`
		} `json:"media"`
		RequestedBy *struct {
			DisplayName string `json:"displayName"`
			Email       string `json:"email"`
		} `json:"requestedBy"`
	} `json:"results"`
}

// Overseerr request status codes.
const (
	requestStatusPending  = 1
	requestStatusApproved = 2
	requestStatusDeclined = 3
	requestStatusFailed   = 4
	requestStatusComplete = 5
)

func requestStatusName(code int) string {
	switch code {
	case requestStatusPending:
		return "PENDING"
	case requestStatusApproved:
		return "APPROVED"
	case requestStatusDeclined:
		return "DECLINED"
	case requestStatusFailed:
		return "FAILED"
	case requestStatusComplete:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

// Overseerr reads media requests. Seerr exposes the same API, so the same
// adapter serves both types.
type Overseerr struct {
	client *httpclient.Client
	logger zerolog.Logger
}

// NewOverseerr builds an Overseerr or Seerr adapter authenticated with
// X-Api-Key.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewOverseerr(cfg models.ProviderConfig, logger zerolog.Logger, opts ...Option) (*Overseerr, error) {
	name := strings.ToLower(string(cfg.Type))
	if name == "" {
		name = "overseerr"
	}
	logger = adapterLogger(logger, name)
	c, err := newClient(cfg, clientSpec{
		provider: name,
		auth:     httpclient.HeaderAuth("X-Api-Key", cfg.APIKey),
	}, logger, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Overseerr{client: c, logger: logger}, nil
}

// GetRequests returns the most recently added requests.
func (o *Overseerr) GetRequests(ctx context.Context) (*RequestPage, error) {
	q := url.Values{}
	q.Set("take", strconv.Itoa(requestPageSize))
	q.Set("skip", "0")
	q.Set("filter", "all")
	q.Set("sort", "added")

	var resp overseerrRequestsResponse
	if err := o.client.Get(ctx, "/api/v1/request", q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get requests: %w", err)
	}

	page := &RequestPage{
		Total:    resp.PageInfo.Results,
		Pages:    resp.PageInfo.Pages,
		Requests: make([]MediaRequest, 0, len(resp.Results)),
	}
	for _, r := range resp.Results {
		req := MediaRequest{
			ID:        r.ID,
			Status:    requestStatusName(r.Status),
			MediaType: r.Type,
			Is4K:      r.Is4K,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}
		if r.Media != nil {
			req.TMDBID = r.Media.TMDBID
			req.TVDBID = r.Media.TVDBID
		}
		if r.RequestedBy != nil {
			req.RequestedBy = r.RequestedBy.DisplayName
			if req.RequestedBy == "" {
				req.RequestedBy = r.RequestedBy.Email
			}
		}
		page.Requests = append(page.Requests, req)
	}

	o.logger.Debug().Int("count", len(page.Requests)).Int("total", page.Total).Msg("Retrieved requests")
	return page, nil
}
