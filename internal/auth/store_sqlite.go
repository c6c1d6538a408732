// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/maintainarr/maintainarr/internal/database"
	"github.com/maintainarr/maintainarr/internal/logging"
	"github.com/maintainarr/maintainarr/internal/metrics"
)

// DefaultPurgeBatch bounds how many expired rows one Set removes.
const DefaultPurgeBatch = 100

// SessionRepository is the subset of *database.DB the SQL store needs.
type SessionRepository interface {
	GetSession(ctx context.Context, sid string) (*database.SessionRow, error)
	UpsertSession(ctx context.Context, sid string, expiredAt int64, payload string) error
	TouchSession(ctx context.Context, sid string, expiredAt int64) error
	DeleteSession(ctx context.Context, sid string) error
	PurgeExpiredSessions(ctx context.Context, nowMs int64, keep string, limit int) (int64, error)
}

// SQLStore keeps sessions in the sessions table.
type SQLStore struct {
	repo       SessionRepository
	ttl        time.Duration
	purgeBatch int
	now        func() time.Time
}

// NewSQLStore wraps repo. Zero ttl or purgeBatch select the defaults.
func NewSQLStore(repo SessionRepository, ttl time.Duration, purgeBatch int) *SQLStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if purgeBatch <= 0 {
		purgeBatch = DefaultPurgeBatch
	}
	return &SQLStore{repo: repo, ttl: ttl, purgeBatch: purgeBatch, now: time.Now}
}

// Get implements Store.
func (s *SQLStore) Get(ctx context.Context, sid string) (*Session, error) {
	row, err := s.repo.GetSession(ctx, sid)
	if errors.Is(err, database.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if row.ExpiredAt <= s.now().UnixMilli() {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal([]byte(row.JSON), &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &sess, nil
}

// Set implements Store. After the write it removes a bounded batch of other
// expired sessions; a failed purge is logged and otherwise ignored.
func (s *SQLStore) Set(ctx context.Context, sid string, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	now := s.now()
	if err := s.repo.UpsertSession(ctx, sid, expiresAt(now, sess, s.ttl), string(payload)); err != nil {
		return err
	}

	n, err := s.repo.PurgeExpiredSessions(ctx, now.UnixMilli(), sid, s.purgeBatch)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Expired session purge failed")
		return nil
	}
	if n > 0 {
		metrics.SessionsPurged.Add(float64(n))
		logging.Ctx(ctx).Debug().Int64("purged", n).Msg("Purged expired sessions")
	}
	return nil
}

// Destroy implements Store.
func (s *SQLStore) Destroy(ctx context.Context, sid string) error {
	return s.repo.DeleteSession(ctx, sid)
}

// Touch implements Store.
func (s *SQLStore) Touch(ctx context.Context, sid string, sess *Session) error {
	return s.repo.TouchSession(ctx, sid, expiresAt(s.now(), sess, s.ttl))
}

// Purge removes one batch of expired sessions. The background sweeper calls
// it so idle deployments do not accumulate rows between logins.
func (s *SQLStore) Purge(ctx context.Context) (int64, error) {
	n, err := s.repo.PurgeExpiredSessions(ctx, s.now().UnixMilli(), "", s.purgeBatch)
	if err != nil {
		return 0, err
	}
	metrics.SessionsPurged.Add(float64(n))
	return n, nil
}
