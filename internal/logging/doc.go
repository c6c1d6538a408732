// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

// Package logging provides the process-wide zerolog logger.
//
// Initialize once at startup:
//
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: "json", Dir: cfg.Logging.Dir})
//	defer logging.Close()
//
// When Dir is set every line is also written as JSON to a size-rotated file
// (lumberjack) named maintainarr.log.
//
// Request-scoped logging picks up the request ID placed on the context by
// the request ID middleware:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("tmdb lookup failed")
//
// Always terminate log chains with .Msg() or .Send().
package logging
