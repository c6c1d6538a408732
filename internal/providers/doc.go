// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

/*
Package providers contains one adapter per external service.

Media services (Sonarr, Radarr, Plex, Jellyfin, Tautulli, Overseerr and
Seerr) expose typed read methods that call one endpoint each and reshape the
response for the dashboard. Sonarr and Radarr go through golift.io/starr
using the decorated client from internal/httpclient.

Rating sources (TMDB, OMDB, TVMaze) expose LookupRatings, which returns
errors, and GetRatings, which never does: failures are logged at warn level
and reported as found=false so one broken source cannot fail an
aggregation.

Factory.Dispatch fans out an adapter's whole method set with errgroup:

	f := providers.NewFactory(logger, providers.WithBreaker(true))
	data, err := f.Dispatch(ctx, cfg)
	// data["series"], data["qualityProfiles"], ...
*/
package providers
