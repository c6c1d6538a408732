// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

// Package ratings aggregates TMDB, OMDB and TVMaze ratings into a single
// summary. Aggregate is pure; Service adds concurrent lookups and a TTL
// cache in front of the provider adapters.
package ratings
