// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package providers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/maintainarr/maintainarr/internal/httpclient"
	"github.com/maintainarr/maintainarr/internal/models"
)

// ErrTautulliAPI is returned when Tautulli answers with result != "success".
var ErrTautulliAPI = errors.New("tautulli API error")

// TautulliLibraryStat summarizes one library section.
type TautulliLibraryStat struct {
	SectionID   int64  `json:"sectionId"`
	SectionName string `json:"sectionName"`
	SectionType string `json:"sectionType"`
	Count       int64  `json:"count"`
	ParentCount int64  `json:"parentCount"`
	ChildCount  int64  `json:"childCount"`
	IsActive    bool   `json:"isActive"`
}

// TautulliHomeStat is one block of the Tautulli home page statistics.
type TautulliHomeStat struct {
	ID    string                `json:"id"`
	Title string                `json:"title"`
	Rows  []TautulliHomeStatRow `json:"rows"`
}

// TautulliHomeStatRow is one entry of a home statistics block.
type TautulliHomeStatRow struct {
	Title         string `json:"title,omitempty"`
	FriendlyName  string `json:"friendlyName,omitempty"`
	MediaType     string `json:"mediaType,omitempty"`
	RatingKey     string `json:"ratingKey,omitempty"`
	TotalPlays    int64  `json:"totalPlays"`
	TotalDuration int64  `json:"totalDuration"`
	UsersWatched  int64  `json:"usersWatched,omitempty"`
	Year          int64  `json:"year,omitempty"`
}

// TautulliHistory is one page of playback history.
type TautulliHistory struct {
	RecordsTotal    int64                   `json:"recordsTotal"`
	RecordsFiltered int64                   `json:"recordsFiltered"`
	Entries         []TautulliHistoryRecord `json:"entries"`
}

// TautulliHistoryRecord is one finished playback.
type TautulliHistoryRecord struct {
	RatingKey       string    `json:"ratingKey"`
	FullTitle       string    `json:"fullTitle"`
	MediaType       string    `json:"mediaType"`
	User            string    `json:"user"`
	Player          string    `json:"player,omitempty"`
	Started         time.Time `json:"started"`
	Stopped         time.Time `json:"stopped"`
	DurationSeconds int64     `json:"duration"`
	WatchedStatus   float64   `json:"watchedStatus"`
}

type tautulliEnvelope[T any] struct {
	Response struct {
		Result  string  `json:"result"`
		Message *string `json:"message"`
		Data    T       `json:"data"`
	} `json:"response"`
}

type tautulliLibraryRow struct {
	SectionID   flexInt `json:"section_id"`
	SectionName string  `json:"section_name"`
	SectionType string  `json:"section_type"`
	Count       flexInt `json:"count"`
	ParentCount flexInt `json:"parent_count"`
	ChildCount  flexInt `json:"child_count"`
	IsActive    flexInt `json:"is_active"`
}

type tautulliHomeStatBlock struct {
	StatID    string `json:"stat_id"`
	StatTitle string `json:"stat_title"`
	Rows      []struct {
		Title         string  `json:"title"`
		FriendlyName  string  `json:"friendly_name"`
		MediaType     string  `json:"media_type"`
		RatingKey     flexStr `json:"rating_key"`
		TotalPlays    flexInt `json:"total_plays"`
		TotalDuration flexInt `json:"total_duration"`
		UsersWatched  flexInt `json:"users_watched"`
		Year          flexInt `json:"year"`
	} `json:"rows"`
}

type tautulliHistoryData struct {
	RecordsTotal    flexInt `json:"recordsTotal"`
	RecordsFiltered flexInt `json:"recordsFiltered"`
	Data            []struct {
		RatingKey     flexStr `json:"rating_key"`
		FullTitle     string  `json:"full_title"`
		MediaType     string  `json:"media_type"`
		FriendlyName  string  `json:"friendly_name"`
		Player        string  `json:"player"`
		Started       flexInt `json:"started"`
		Stopped       flexInt `json:"stopped"`
		Duration      flexInt `json:"duration"`
		WatchedStatus float64 `json:"watched_status"`
	} `json:"data"`
}

// historyPageSize bounds GetHistory to the most recent plays.
const historyPageSize = 25

// Tautulli reads statistics from the Tautulli v2 API. Every call hits
// api/v2 with a cmd parameter.
type Tautulli struct {
	client *httpclient.Client
	logger zerolog.Logger
}

// NewTautulli builds a Tautulli adapter.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewTautulli(cfg models.ProviderConfig, logger zerolog.Logger, opts ...Option) (*Tautulli, error) {
	logger = adapterLogger(logger, "tautulli")
	c, err := newClient(cfg, clientSpec{
		provider: "tautulli",
		auth:     httpclient.QueryAuth("apikey", cfg.APIKey),
	}, logger, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Tautulli{client: c, logger: logger}, nil
}

// callTautulli runs cmd and unwraps the response envelope.
func callTautulli[T any](ctx context.Context, t *Tautulli, cmd string, params url.Values) (T, error) {
	var zero T
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("cmd", cmd)

	var env tautulliEnvelope[T]
	if err := t.client.Get(ctx, "/api/v2", q, &env); err != nil {
		return zero, fmt.Errorf("tautulli: %s: %w", cmd, err)
	}
	if env.Response.Result != "success" {
		msg := "unknown error"
		if env.Response.Message != nil && *env.Response.Message != "" {
			msg = *env.Response.Message
		}
		return zero, fmt.Errorf("%w: %s: %s", ErrTautulliAPI, cmd, msg)
	}
	return env.Response.Data, nil
}

// GetLibraryStats returns item counts per library section.
func (t *Tautulli) GetLibraryStats(ctx context.Context) ([]TautulliLibraryStat, error) {
	rows, err := callTautulli[[]tautulliLibraryRow](ctx, t, "get_libraries", nil)
	if err != nil {
		return nil, err
	}
	out := make([]TautulliLibraryStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, TautulliLibraryStat{
			SectionID:   int64(r.SectionID),
			SectionName: r.SectionName,
			SectionType: r.SectionType,
			Count:       int64(r.Count),
			ParentCount: int64(r.ParentCount),
			ChildCount:  int64(r.ChildCount),
			IsActive:    r.IsActive != 0,
		})
	}
	return out, nil
}

// GetHomeStats returns the home page statistic blocks (top movies, top
// users and so on) for the last 30 days.
func (t *Tautulli) GetHomeStats(ctx context.Context) ([]TautulliHomeStat, error) {
	params := url.Values{"time_range": {"30"}, "stats_count": {"10"}}
	blocks, err := callTautulli[[]tautulliHomeStatBlock](ctx, t, "get_home_stats", params)
	if err != nil {
		return nil, err
	}
	out := make([]TautulliHomeStat, 0, len(blocks))
	for _, b := range blocks {
		stat := TautulliHomeStat{ID: b.StatID, Title: b.StatTitle, Rows: make([]TautulliHomeStatRow, 0, len(b.Rows))}
		for _, r := range b.Rows {
			stat.Rows = append(stat.Rows, TautulliHomeStatRow{
				Title:         r.Title,
				FriendlyName:  r.FriendlyName,
				MediaType:     r.MediaType,
				RatingKey:     string(r.RatingKey),
				TotalPlays:    int64(r.TotalPlays),
				TotalDuration: int64(r.TotalDuration),
				UsersWatched:  int64(r.UsersWatched),
				Year:          int64(r.Year),
			})
		}
		out = append(out, stat)
	}
	return out, nil
}

// GetHistory returns the most recent playback history.
func (t *Tautulli) GetHistory(ctx context.Context) (*TautulliHistory, error) {
	params := url.Values{"length": {strconv.Itoa(historyPageSize)}, "order_column": {"date"}, "order_dir": {"desc"}}
	data, err := callTautulli[tautulliHistoryData](ctx, t, "get_history", params)
	if err != nil {
		return nil, err
	}
	out := &TautulliHistory{
		RecordsTotal:    int64(data.RecordsTotal),
		RecordsFiltered: int64(data.RecordsFiltered),
		Entries:         make([]TautulliHistoryRecord, 0, len(data.Data)),
	}
	for _, r := range data.Data {
		out.Entries = append(out.Entries, TautulliHistoryRecord{
			RatingKey:       string(r.RatingKey),
			FullTitle:       r.FullTitle,
			MediaType:       r.MediaType,
			User:            r.FriendlyName,
			Player:          r.Player,
			Started:         time.Unix(int64(r.Started), 0).UTC(),
			Stopped:         time.Unix(int64(r.Stopped), 0).UTC(),
			DurationSeconds: int64(r.Duration),
			WatchedStatus:   r.WatchedStatus,
		})
	}
	return out, nil
}
