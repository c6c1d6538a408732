// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package services

import (
	"context"
	"time"

	"github.com/maintainarr/maintainarr/internal/logging"
)

// DefaultSweepInterval is how often expired sessions are swept.
const DefaultSweepInterval = 15 * time.Minute

// SessionPurger removes one batch of expired sessions.
type SessionPurger interface {
	Purge(ctx context.Context) (int64, error)
}

// SessionSweeper purges expired sessions on a fixed interval. Logins purge
// opportunistically as well; the sweeper covers deployments nobody logs in
// to for a long time.
type SessionSweeper struct {
	purger   SessionPurger
	interval time.Duration
}

// NewSessionSweeper creates a sweeper. A non-positive interval selects
// DefaultSweepInterval.
func NewSessionSweeper(purger SessionPurger, interval time.Duration) *SessionSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &SessionSweeper{purger: purger, interval: interval}
}

// Serve implements suture.Service. Purge errors are logged and the sweeper
// keeps going; only context cancellation ends it.
func (s *SessionSweeper) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log := logging.WithComponent("session-sweeper")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := s.purger.Purge(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("Session sweep failed")
				continue
			}
			if n > 0 {
				log.Debug().Int64("purged", n).Msg("Swept expired sessions")
			}
		}
	}
}

func (s *SessionSweeper) String() string {
	return "session-sweeper"
}
