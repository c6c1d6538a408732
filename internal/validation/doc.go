// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

// Package validation wraps a singleton go-playground/validator instance.
//
// Request structs describe their rules in tags, and failures are reported by
// wire name (the query or json tag):
//
//	type metadataQuery struct {
//	    Type     string `query:"type" validate:"required,provider_type"`
//	    URL      string `query:"url" validate:"required,http_url"`
//	    Settings string `query:"settings" validate:"omitempty,json_object"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    return verr.ToAppError()
//	}
//
// Custom tags:
//   - provider_type: one of RADARR, SONARR, PLEX, JELLYFIN, TAUTULLI,
//     OVERSEERR, SEERR, TMDB, OMDB, TVMAZE
//   - json_object: a string containing a JSON object
package validation
