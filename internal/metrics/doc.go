// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

// Package metrics declares the Prometheus collectors exposed on /metrics.
//
// Collectors are registered with promauto at package init. Callers use the
// Record* helpers rather than touching the vectors directly:
//
//	start := time.Now()
//	err := call()
//	metrics.RecordProviderRequest("sonarr", time.Since(start), err)
package metrics
