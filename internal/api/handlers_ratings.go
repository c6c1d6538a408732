// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/maintainarr/maintainarr/internal/models"
	"github.com/maintainarr/maintainarr/internal/ratings"
)

type ratingsQuery struct {
	Title      string `query:"title" validate:"required,max=500"`
	Year       string `query:"year" validate:"omitempty,numeric,len=4"`
	TMDBAPIKey string `query:"tmdbApiKey"`
	OMDBAPIKey string `query:"omdbApiKey"`
}

// RatingsResponse is AggregatedRatings plus a display summary.
type RatingsResponse struct {
	models.AggregatedRatings
	SummaryText string `json:"summaryText"`
}

// Ratings aggregates TMDB, OMDB and TVMaze ratings for a title.
//
// @Summary Aggregate ratings
// @Description TMDB runs when a key is given or TMDB_API_KEY is set, OMDB only with a key, TVMaze always. Failed sources report found=false.
// @Tags Providers
// @Produce json
// @Param title query string true "Title to look up"
// @Param year query int false "Release year"
// @Param tmdbApiKey query string false "TMDB API key"
// @Param omdbApiKey query string false "OMDB API key"
// @Success 200 {object} models.APIResponse{data=RatingsResponse}
// @Failure 400 {object} models.APIResponse
// @Router /providers/ratings [get]
func (h *Handler) Ratings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := ratingsQuery{
		Title:      strings.TrimSpace(q.Get("title")),
		Year:       strings.TrimSpace(q.Get("year")),
		TMDBAPIKey: q.Get("tmdbApiKey"),
		OMDBAPIKey: q.Get("omdbApiKey"),
	}
	if err := validateRequest(&req); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	var year *int
	if req.Year != "" {
		y, _ := strconv.Atoi(req.Year)
		year = &y
	}

	agg, err := h.ratings.Lookup(r.Context(), ratings.Query{
		Title:      req.Title,
		Year:       year,
		TMDBAPIKey: req.TMDBAPIKey,
		OMDBAPIKey: req.OMDBAPIKey,
	})
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	respondOK(w, RatingsResponse{AggregatedRatings: *agg, SummaryText: ratings.GetSummary(*agg)})
}
