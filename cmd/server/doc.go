// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

/*
Package main is the entry point for the Maintainarr API server.

Maintainarr fronts the media stack of a home server: it reads metadata from
Radarr, Sonarr, Plex, Jellyfin, Tautulli and Overseerr, aggregates ratings
from TMDB, OMDB and TVMaze, and signs users in with their Plex account.

# Startup

 1. Configuration: koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog, optionally with a rotating file in LOG_DIR
 3. Database: SQLite with embedded migrations; secrets sealed with a key
    derived from SESSION_SECRET
 4. Providers: adapter factory with per-host circuit breakers
 5. Sessions and authorization: SQLite session store, casbin RBAC
 6. Supervisor tree: HTTP server and the expired session sweeper

# Signals

SIGINT and SIGTERM cancel the supervisor. The HTTP server gets
SHUTDOWN_TIMEOUT to drain in-flight requests, then the database is closed.

# Example

	export SESSION_SECRET=$(openssl rand -base64 32)
	export TMDB_API_KEY=your-tmdb-key
	export DB_PATH=/config/db/maintainarr.db
	./maintainarr

@title Maintainarr API
@version 1.0
@description Provider metadata, ratings aggregation and Plex sign-in for the Maintainarr dashboard.
@contact.name GitHub Repository
@contact.url https://github.com/maintainarr/maintainarr/issues
@license.name AGPL-3.0-or-later
@BasePath /api
@schemes http https
@securityDefinitions.apikey SessionCookie
@in cookie
@name connect.sid
*/
package main
