// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package models

// Rating source identifiers.
const (
	SourceTMDB   = "tmdb"
	SourceOMDB   = "omdb"
	SourceTVMaze = "tvmaze"
)

// TMDBRating is the TMDB rating lookup result. When Found is false every
// optional field is nil.
type TMDBRating struct {
	Source      string   `json:"source"`
	Found       bool     `json:"found"`
	TMDBID      *int64   `json:"tmdbId,omitempty"`
	MediaType   string   `json:"mediaType,omitempty"`
	MovieRating *float64 `json:"movieRating,omitempty"`
	TVRating    *float64 `json:"tvRating,omitempty"`
	VoteCount   *int64   `json:"voteCount,omitempty"`
	Popularity  *float64 `json:"popularity,omitempty"`
}

// OMDBRating is the OMDB rating lookup result.
type OMDBRating struct {
	Source         string   `json:"source"`
	Found          bool     `json:"found"`
	IMDBID         string   `json:"imdbId,omitempty"`
	IMDBRating     *float64 `json:"imdbRating,omitempty"`
	IMDBVotes      *int64   `json:"imdbVotes,omitempty"`
	RottenTomatoes *int     `json:"rottenTomatoes,omitempty"`
	Metacritic     *int     `json:"metacritic,omitempty"`
}

// TVMazeRating is the TVMaze rating lookup result.
type TVMazeRating struct {
	Source   string   `json:"source"`
	Found    bool     `json:"found"`
	TVMazeID *int64   `json:"tvmazeId,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}

// RatingsSummary condenses the per-source results.
type RatingsSummary struct {
	AverageRating *float64 `json:"averageRating,omitempty"`
	TotalSources  int      `json:"totalSources"`
	FoundSources  int      `json:"foundSources"`
}

// AggregatedRatings combines up to three rating sources for one title.
type AggregatedRatings struct {
	Title   string         `json:"title"`
	Year    *int           `json:"year,omitempty"`
	TMDB    *TMDBRating    `json:"tmdb,omitempty"`
	OMDB    *OMDBRating    `json:"omdb,omitempty"`
	TVMaze  *TVMazeRating  `json:"tvmaze,omitempty"`
	Summary RatingsSummary `json:"summary"`
}
