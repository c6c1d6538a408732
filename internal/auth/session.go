// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package auth

import (
	"context"
	"time"
)

// DefaultSessionTTL applies when a session cookie carries no maxAge.
const DefaultSessionTTL = 24 * time.Hour

// Cookie is the cookie part of a stored session. MaxAge is in milliseconds.
type Cookie struct {
	MaxAge   *int64     `json:"maxAge,omitempty"`
	Expires  *time.Time `json:"expires,omitempty"`
	HTTPOnly bool       `json:"httpOnly"`
	Path     string     `json:"path"`
}

// Session is the payload serialized into sessions.json.
type Session struct {
	Cookie Cookie `json:"cookie"`
	UserID int64  `json:"userId,omitempty"`
}

// Store persists sessions by sid.
type Store interface {
	// Get returns nil, nil when sid is unknown or has expired.
	Get(ctx context.Context, sid string) (*Session, error)
	// Set creates or replaces the session.
	Set(ctx context.Context, sid string, sess *Session) error
	// Destroy removes sid. A missing sid is not an error.
	Destroy(ctx context.Context, sid string) error
	// Touch pushes the expiry of sid forward without rewriting its payload.
	Touch(ctx context.Context, sid string, sess *Session) error
}

// expiresAt computes the expiry in epoch milliseconds from the cookie's
// maxAge, falling back to ttl.
func expiresAt(now time.Time, sess *Session, ttl time.Duration) int64 {
	if sess != nil && sess.Cookie.MaxAge != nil {
		return now.UnixMilli() + *sess.Cookie.MaxAge
	}
	return now.Add(ttl).UnixMilli()
}
