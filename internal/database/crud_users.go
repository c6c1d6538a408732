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
	"strings"
	"time"

	"github.com/maintainarr/maintainarr/internal/models"
)

// ErrUserNotFound is returned when no user matches.
var ErrUserNotFound = errors.New("user not found")

// PlexAccount is the identity plex.tv returns for a token.
type PlexAccount struct {
	PlexID   int64
	Email    string
	Username string
	Avatar   string
	Token    string
}

const userColumns = `id, email, plex_username, plex_id, plex_token, avatar, user_type, is_active, created_at, updated_at`

// GetUser retrieves a user by ID with the Plex token decrypted.
func (db *DB) GetUser(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM "user" WHERE id = ?`

	start := time.Now()
	var u models.User
	err := db.conn.GetContext(ctx, &u, query, id)
	db.trace("select", "user", query, start, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return db.openUser(&u)
}

// CountUsers returns the number of accounts.
func (db *DB) CountUsers(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM "user"`

	start := time.Now()
	var n int
	err := db.conn.GetContext(ctx, &n, query)
	db.trace("select", "user", query, start, err)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// UpsertPlexUser creates the user on first login, or refreshes token,
// username and avatar on later logins. plex_id is only filled when it was
// null. Accounts match on plex_id first, then on email.
func (db *DB) UpsertPlexUser(ctx context.Context, acct PlexAccount) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(acct.Email))
	if email == "" {
		return nil, errors.New("plex account has no email")
	}

	token, err := db.secrets.Seal(acct.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to seal plex token: %w", err)
	}

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	start := time.Now()
	var id int64
	lookup := `SELECT id FROM "user" WHERE plex_id = ? OR email = ? ORDER BY (plex_id = ?) DESC LIMIT 1`
	err = tx.GetContext(ctx, &id, lookup, acct.PlexID, email, acct.PlexID)
	db.trace("select", "user", lookup, start, err)

	now := time.Now().UTC()
	switch {
	case errors.Is(err, sql.ErrNoRows):
		insert := `INSERT INTO "user" (email, plex_username, plex_id, plex_token, avatar, user_type, is_active, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)`
		start = time.Now()
		res, ierr := tx.ExecContext(ctx, insert,
			email, nullString(acct.Username), acct.PlexID, nullString(token), nullString(acct.Avatar),
			models.UserTypePlex, now, now)
		db.trace("insert", "user", insert, start, ierr)
		if ierr != nil {
			return nil, fmt.Errorf("failed to create user: %w", ierr)
		}
		if id, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("failed to read user id: %w", err)
		}
		db.logger.Info().Int64("user_id", id).Msg("Created user from Plex login")

	case err != nil:
		return nil, fmt.Errorf("failed to look up user: %w", err)

	default:
		update := `UPDATE "user" SET plex_token = ?, plex_username = ?, avatar = ?,
			plex_id = COALESCE(plex_id, ?), updated_at = ? WHERE id = ?`
		start = time.Now()
		_, uerr := tx.ExecContext(ctx, update,
			nullString(token), nullString(acct.Username), nullString(acct.Avatar), acct.PlexID, now, id)
		db.trace("update", "user", update, start, uerr)
		if uerr != nil {
			return nil, fmt.Errorf("failed to update user: %w", uerr)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit user: %w", err)
	}
	return db.GetUser(ctx, id)
}

// SetUserActive enables or disables an account.
func (db *DB) SetUserActive(ctx context.Context, id int64, active bool) error {
	query := `UPDATE "user" SET is_active = ?, updated_at = ? WHERE id = ?`

	start := time.Now()
	res, err := db.conn.ExecContext(ctx, query, active, time.Now().UTC(), id)
	db.trace("update", "user", query, start, err)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (db *DB) openUser(u *models.User) (*models.User, error) {
	if u.PlexToken != nil {
		plain, err := db.secrets.Open(*u.PlexToken)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt plex token: %w", err)
		}
		u.PlexToken = &plain
	}
	return u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
