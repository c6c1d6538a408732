// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

/*
Package api serves the Maintainarr HTTP API on a chi router.

Routes:

	GET    /api/health
	GET    /api/providers/metadata       ad-hoc dispatch from query parameters
	GET    /api/providers/ratings        TMDB, OMDB and TVMaze aggregation
	POST   /api/auth/plex                sign in with a Plex token
	GET    /api/auth/me
	POST   /api/auth/logout
	GET    /api/providers                signed-in users (read)
	POST   /api/providers                admin
	GET    /api/providers/{id}           signed-in users (read)
	PUT    /api/providers/{id}           admin
	DELETE /api/providers/{id}           admin
	GET    /api/providers/{id}/metadata  dispatch with a stored provider
	GET    /metrics
	GET    /swagger/*

Every JSON body uses the envelope {status:"ok", data} or
{status:"error", error:{type, message, errors?}}, except /api/health which
returns its fields at the top level. /api/auth/* allows 10 requests per
minute per IP and /api/providers/* allows 120.
*/
package api
