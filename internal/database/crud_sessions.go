// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrSessionNotFound is returned when no session row matches.
var ErrSessionNotFound = errors.New("session not found")

// SessionRow is one stored session. ExpiredAt is in epoch milliseconds.
type SessionRow struct {
	ID        string `db:"id"`
	ExpiredAt int64  `db:"expired_at"`
	JSON      string `db:"json"`
}

// GetSession returns the row for sid regardless of expiry.
func (db *DB) GetSession(ctx context.Context, sid string) (*SessionRow, error) {
	stmt := `SELECT id, expired_at, json FROM sessions WHERE id = ?`

	start := time.Now()
	var row SessionRow
	err := db.conn.GetContext(ctx, &row, stmt, sid)
	db.trace("select", "sessions", stmt, start, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &row, nil
}

// UpsertSession inserts or replaces the session sid.
func (db *DB) UpsertSession(ctx context.Context, sid string, expiredAt int64, payload string) error {
	stmt := `INSERT INTO sessions (id, expired_at, json) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET expired_at = excluded.expired_at, json = excluded.json`

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, stmt, sid, expiredAt, payload)
	db.trace("upsert", "sessions", stmt, start, err)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// TouchSession updates only the expiry of sid.
func (db *DB) TouchSession(ctx context.Context, sid string, expiredAt int64) error {
	stmt := `UPDATE sessions SET expired_at = ? WHERE id = ?`

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, stmt, expiredAt, sid)
	db.trace("update", "sessions", stmt, start, err)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// DeleteSession removes sid. Deleting a missing session is not an error.
func (db *DB) DeleteSession(ctx context.Context, sid string) error {
	stmt := `DELETE FROM sessions WHERE id = ?`

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, stmt, sid)
	db.trace("delete", "sessions", stmt, start, err)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PurgeExpiredSessions deletes up to limit sessions that expired at or
// before nowMs, never touching keep. It returns the number removed.
func (db *DB) PurgeExpiredSessions(ctx context.Context, nowMs int64, keep string, limit int) (int64, error) {
	stmt := `DELETE FROM sessions WHERE id IN (
		SELECT id FROM sessions WHERE expired_at <= ? AND id != ? LIMIT ?)`

	start := time.Now()
	res, err := db.conn.ExecContext(ctx, stmt, nowMs, keep, limit)
	db.trace("delete", "sessions", stmt, start, err)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
