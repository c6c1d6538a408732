// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package ratings

import (
	"testing"

	"github.com/maintainarr/maintainarr/internal/models"
)

func f64(v float64) *float64 { return &v }

func TestAggregate_AverageAcrossSources(t *testing.T) {
	year := 2008
	agg := Aggregate("Breaking Bad", &year,
		&models.TMDBRating{Source: models.SourceTMDB, Found: true, TVRating: f64(8.9)},
		&models.OMDBRating{Source: models.SourceOMDB, Found: true, IMDBRating: f64(9.5)},
		&models.TVMazeRating{Source: models.SourceTVMaze, Found: true, Rating: f64(9.1)},
	)

	if agg.Summary.TotalSources != 3 || agg.Summary.FoundSources != 3 {
		t.Fatalf("sources = %d/%d, want 3/3", agg.Summary.FoundSources, agg.Summary.TotalSources)
	}
	if agg.Summary.AverageRating == nil || *agg.Summary.AverageRating != 9.17 {
		t.Fatalf("average = %v, want 9.17", agg.Summary.AverageRating)
	}
	if agg.Year == nil || *agg.Year != 2008 {
		t.Errorf("year not carried through")
	}
}

func TestAggregate_MovieRatingPreferredOverTV(t *testing.T) {
	agg := Aggregate("x", nil,
		&models.TMDBRating{Found: true, MovieRating: f64(6.0), TVRating: f64(9.0)}, nil, nil)
	if got := *agg.Summary.AverageRating; got != 6.0 {
		t.Errorf("average = %v, want 6.0", got)
	}
}

func TestAggregate_Counts(t *testing.T) {
	tests := []struct {
		name      string
		tmdb      *models.TMDBRating
		omdb      *models.OMDBRating
		tvmaze    *models.TVMazeRating
		wantTotal int
		wantFound int
		wantAvg   *float64
	}{
		{
			name:      "nothing queried",
			wantTotal: 0, wantFound: 0,
		},
		{
			name:      "only tvmaze, not found",
			tvmaze:    &models.TVMazeRating{Source: models.SourceTVMaze},
			wantTotal: 1, wantFound: 0,
		},
		{
			name:      "found without usable value",
			omdb:      &models.OMDBRating{Found: true},
			tvmaze:    &models.TVMazeRating{Found: true, Rating: f64(7.25)},
			wantTotal: 2, wantFound: 2, wantAvg: f64(7.25),
		},
		{
			name:      "not found ignores stray value",
			tmdb:      &models.TMDBRating{Found: false, MovieRating: f64(1)},
			omdb:      &models.OMDBRating{Found: true, IMDBRating: f64(8)},
			wantTotal: 2, wantFound: 1, wantAvg: f64(8),
		},
		{
			name:      "rounding",
			tmdb:      &models.TMDBRating{Found: true, MovieRating: f64(7.34)},
			omdb:      &models.OMDBRating{Found: true, IMDBRating: f64(7.0)},
			wantTotal: 2, wantFound: 2, wantAvg: f64(7.17),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := Aggregate("t", nil, tt.tmdb, tt.omdb, tt.tvmaze)
			s := agg.Summary
			if s.TotalSources != tt.wantTotal || s.FoundSources != tt.wantFound {
				t.Errorf("sources = %d/%d, want %d/%d", s.FoundSources, s.TotalSources, tt.wantFound, tt.wantTotal)
			}
			if s.FoundSources > s.TotalSources || s.TotalSources > 3 {
				t.Errorf("invalid counts %d/%d", s.FoundSources, s.TotalSources)
			}
			switch {
			case tt.wantAvg == nil && s.AverageRating != nil:
				t.Errorf("average = %v, want nil", *s.AverageRating)
			case tt.wantAvg != nil && (s.AverageRating == nil || *s.AverageRating != *tt.wantAvg):
				t.Errorf("average = %v, want %v", s.AverageRating, *tt.wantAvg)
			}
		})
	}
}

func TestFormatRating(t *testing.T) {
	if got := FormatRating(nil); got != "N/A" {
		t.Errorf("FormatRating(nil) = %q", got)
	}
	if got := FormatRating(f64(9.17)); got != "9.2/10" {
		t.Errorf("FormatRating(9.17) = %q", got)
	}
	if got := FormatRating(f64(8.5)); got != "8.5/10" {
		t.Errorf("FormatRating(8.5) = %q", got)
	}
	if got := FormatRatingScale(f64(87), 100); got != "87.0/100" {
		t.Errorf("FormatRatingScale = %q", got)
	}
}

func TestGetSummary(t *testing.T) {
	none := Aggregate("t", nil, &models.TMDBRating{}, &models.OMDBRating{}, nil)
	if got := GetSummary(none); got != "No ratings found from 2 source(s)" {
		t.Errorf("GetSummary = %q", got)
	}

	some := Aggregate("t", nil,
		&models.TMDBRating{Found: true, MovieRating: f64(8.9)},
		&models.OMDBRating{},
		&models.TVMazeRating{Found: true, Rating: f64(9.1)})
	if got := GetSummary(some); got != "Average: 9.0/10 from 2/3 source(s)" {
		t.Errorf("GetSummary = %q", got)
	}
}
