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
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/maintainarr/maintainarr/internal/config"
	"github.com/maintainarr/maintainarr/internal/logging"
	"github.com/maintainarr/maintainarr/internal/metrics"
)

// MemoryPath selects a private in-memory database.
const MemoryPath = ":memory:"

// SecretSealer encrypts credentials before they are stored.
// *config.CredentialEncryptor implements it.
type SecretSealer interface {
	Seal(plaintext string) (string, error)
	Open(stored string) (string, error)
}

// plainSealer stores secrets unchanged.
type plainSealer struct{}

func (plainSealer) Seal(s string) (string, error) { return s, nil }
func (plainSealer) Open(s string) (string, error) { return s, nil }

// DB wraps the SQLite connection pool.
type DB struct {
	conn    *sqlx.DB
	cfg     config.DatabaseConfig
	secrets SecretSealer
	logger  zerolog.Logger
}

// Open connects to the database at cfg.Path, creating parent directories,
// and applies pending migrations. secrets may be nil to store credentials
// in plain text.
func Open(cfg config.DatabaseConfig, secrets SecretSealer) (*DB, error) {
	if cfg.Path == "" {
		return nil, errors.New("database path is required")
	}
	if secrets == nil {
		secrets = plainSealer{}
	}

	memory := cfg.Path == MemoryPath
	dsn := "file::memory:?_fk=1"
	if !memory {
		dir := filepath.Dir(cfg.Path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
		dsn = "file:" + cfg.Path + "?_fk=1&_busy_timeout=5000&_journal_mode=WAL&mode=rwc"
	}

	conn, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if memory {
		// Each connection to :memory: is a separate database.
		conn.SetMaxOpenConns(1)
	}

	db := &DB{
		conn:    conn,
		cfg:     cfg,
		secrets: secrets,
		logger:  logging.WithComponent("database"),
	}

	if err := db.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db.logger.Info().Str("path", cfg.Path).Msg("Database ready")
	return db, nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping checks the connection.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// trace records metrics for one statement and, when DB_LOGGING is on,
// logs the SQL. sql.ErrNoRows is not counted as an error.
func (db *DB) trace(op, table, query string, start time.Time, err error) {
	d := time.Since(start)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}
	metrics.RecordDBQuery(op, table, d, err)
	if db.cfg.Logging {
		db.logger.Debug().
			Str("op", op).
			Str("table", table).
			Dur("duration", d).
			Str("sql", query).
			AnErr("error", err).
			Msg("SQL")
	}
}

// isUniqueConstraintError reports whether err is a UNIQUE violation.
func isUniqueConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
