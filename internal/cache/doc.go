// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

// Package cache provides the in-memory TTL cache used for rating lookups.
//
//	c := cache.New("ratings", time.Hour)
//	defer c.Close()
//
//	key := cache.GenerateKey("tmdb", map[string]interface{}{"title": t, "year": y})
//	if v, ok := c.Get(key); ok {
//	    return v.(*models.TMDBRating)
//	}
package cache
