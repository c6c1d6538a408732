// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package ratings

import (
	"fmt"
	"math"

	"github.com/maintainarr/maintainarr/internal/models"
)

// DefaultScale is the scale every source's primary rating is expressed in.
const DefaultScale = 10

// Aggregate combines the per-source results for title. Nil sources were not
// queried and do not count towards TotalSources.
func Aggregate(title string, year *int, tmdb *models.TMDBRating, omdb *models.OMDBRating, tvmaze *models.TVMazeRating) models.AggregatedRatings {
	agg := models.AggregatedRatings{
		Title:  title,
		Year:   year,
		TMDB:   tmdb,
		OMDB:   omdb,
		TVMaze: tvmaze,
	}

	var values []float64
	if tmdb != nil {
		agg.Summary.TotalSources++
		if tmdb.Found {
			agg.Summary.FoundSources++
			switch {
			case tmdb.MovieRating != nil:
				values = append(values, *tmdb.MovieRating)
			case tmdb.TVRating != nil:
				values = append(values, *tmdb.TVRating)
			}
		}
	}
	if omdb != nil {
		agg.Summary.TotalSources++
		if omdb.Found {
			agg.Summary.FoundSources++
			if omdb.IMDBRating != nil {
				values = append(values, *omdb.IMDBRating)
			}
		}
	}
	if tvmaze != nil {
		agg.Summary.TotalSources++
		if tvmaze.Found {
			agg.Summary.FoundSources++
			if tvmaze.Rating != nil {
				values = append(values, *tvmaze.Rating)
			}
		}
	}

	if len(values) > 0 {
		var sum float64
		for _, v := range values {
			sum += v
		}
		avg := round2(sum / float64(len(values)))
		agg.Summary.AverageRating = &avg
	}
	return agg
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatRating renders v on the default 10 point scale, e.g. "9.2/10".
func FormatRating(v *float64) string {
	return FormatRatingScale(v, DefaultScale)
}

// FormatRatingScale renders v with one decimal over scale, or "N/A".
func FormatRatingScale(v *float64, scale int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f/%d", *v, scale)
}

// GetSummary returns a one-line description of agg.
func GetSummary(agg models.AggregatedRatings) string {
	s := agg.Summary
	if s.FoundSources == 0 {
		return fmt.Sprintf("No ratings found from %d source(s)", s.TotalSources)
	}
	return fmt.Sprintf("Average: %s from %d/%d source(s)", FormatRating(s.AverageRating), s.FoundSources, s.TotalSources)
}
