// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

// Package middleware holds the HTTP middleware shared by every route:
// request ids, access logging and Prometheus instrumentation.
package middleware
