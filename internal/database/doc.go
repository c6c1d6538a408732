// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

/*
Package database persists users, sessions and provider configurations in
SQLite.

Open connects with github.com/mattn/go-sqlite3 through sqlx and applies the
embedded golang-migrate migrations before returning. Tables:

  - "user": dashboard accounts created on first Plex login
  - sessions: cookie sessions keyed by sid, expiry in epoch milliseconds
  - metadata_provider: stored provider configurations

Credentials (user.plex_token and metadata_provider.api_key) pass through a
SecretSealer on the way in and out. With DB_LOGGING enabled every statement
is logged at debug level; statement timings always feed the
maintainarr_db_query_duration_seconds histogram.

Use ":memory:" for tests:

	db, err := database.Open(config.DatabaseConfig{Path: database.MemoryPath}, nil)
*/
package database
