// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

// Package config loads Maintainarr configuration with koanf.
//
// Sources, lowest to highest priority:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file: CONFIG_PATH, or config/maintainarr.yaml
//  3. Environment variables
//
// Environment variables:
//
//	NODE_ENV        development | production | test (default development)
//	PORT            1-65535 (default 5057)
//	COMMIT_TAG      build identifier (default local)
//	LOG_LEVEL       trace | debug | info | warn | error (default info)
//	LOG_FORMAT      json | console (default console in development)
//	LOG_DIR         directory for a rotating log file
//	DB_PATH         ":memory:" or a SQLite file path
//	DB_LOGGING      log every SQL statement at debug level
//	TRUST_PROXY     honor X-Forwarded-For / X-Real-IP
//	TMDB_API_KEY    default TMDB key for the ratings endpoint
//	SESSION_SECRET  signs session cookies and seals stored credentials
//	SESSION_TTL     default session lifetime (default 720h)
//	CORS_ORIGINS    comma-separated allowed origins
//
// Load returns an error starting with "Invalid configuration" when a value
// is out of range or not one of the allowed values.
package config
