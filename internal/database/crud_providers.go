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

	"github.com/goccy/go-json"

	"github.com/maintainarr/maintainarr/internal/database/query"
	"github.com/maintainarr/maintainarr/internal/models"
)

// Provider errors
var (
	ErrProviderNotFound     = errors.New("provider not found")
	ErrProviderNameConflict = errors.New("provider with this name already exists")
)

// ProviderFilter narrows ListProviders. Zero values match everything.
type ProviderFilter struct {
	Types  []models.ProviderType
	Active *bool
}

type providerRow struct {
	ID        int64          `db:"id"`
	Type      string         `db:"type"`
	Name      string         `db:"name"`
	URL       string         `db:"url"`
	APIKey    sql.NullString `db:"api_key"`
	Settings  sql.NullString `db:"settings"`
	IsActive  bool           `db:"is_active"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

const providerColumns = `id, type, name, url, api_key, settings, is_active, created_at, updated_at`

// CreateProvider stores p and fills in its ID and timestamps. The API key
// is encrypted before it is written.
func (db *DB) CreateProvider(ctx context.Context, p *models.ProviderConfig) error {
	apiKey, settings, err := db.encodeProvider(p)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	stmt := `INSERT INTO metadata_provider (type, name, url, api_key, settings, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	res, err := db.conn.ExecContext(ctx, stmt, string(p.Type), p.Name, p.URL, apiKey, settings, p.IsActive, now, now)
	db.trace("insert", "metadata_provider", stmt, start, err)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrProviderNameConflict
		}
		return fmt.Errorf("failed to create provider: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read provider id: %w", err)
	}
	p.ID, p.CreatedAt, p.UpdatedAt = id, now, now
	return nil
}

// GetProvider retrieves a provider by ID with its API key decrypted.
func (db *DB) GetProvider(ctx context.Context, id int64) (*models.ProviderConfig, error) {
	stmt := `SELECT ` + providerColumns + ` FROM metadata_provider WHERE id = ?`

	start := time.Now()
	var row providerRow
	err := db.conn.GetContext(ctx, &row, stmt, id)
	db.trace("select", "metadata_provider", stmt, start, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	return db.decodeProvider(&row)
}

// ListProviders returns the providers matching f ordered by name.
func (db *DB) ListProviders(ctx context.Context, f ProviderFilter) ([]models.ProviderConfig, error) {
	types := make([]string, len(f.Types))
	for i, t := range f.Types {
		types[i] = string(t)
	}
	wb := query.NewWhereBuilder().
		AddIn("type", types).
		AddBool("is_active", f.Active)

	stmt := `SELECT ` + providerColumns + ` FROM metadata_provider`
	var args []interface{}
	if !wb.IsEmpty() {
		var where string
		where, args = wb.BuildWithPrefix()
		stmt += " " + where
	}
	stmt += ` ORDER BY name`

	start := time.Now()
	var rows []providerRow
	err := db.conn.SelectContext(ctx, &rows, stmt, args...)
	db.trace("select", "metadata_provider", stmt, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	out := make([]models.ProviderConfig, 0, len(rows))
	for i := range rows {
		p, err := db.decodeProvider(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// UpdateProvider overwrites the stored fields of p.ID.
func (db *DB) UpdateProvider(ctx context.Context, p *models.ProviderConfig) error {
	apiKey, settings, err := db.encodeProvider(p)
	if err != nil {
		return err
	}

	p.UpdatedAt = time.Now().UTC()
	stmt := `UPDATE metadata_provider SET type = ?, name = ?, url = ?, api_key = ?, settings = ?,
		is_active = ?, updated_at = ? WHERE id = ?`

	start := time.Now()
	res, err := db.conn.ExecContext(ctx, stmt, string(p.Type), p.Name, p.URL, apiKey, settings, p.IsActive, p.UpdatedAt, p.ID)
	db.trace("update", "metadata_provider", stmt, start, err)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrProviderNameConflict
		}
		return fmt.Errorf("failed to update provider: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return ErrProviderNotFound
	}
	return nil
}

// DeleteProvider removes a provider.
func (db *DB) DeleteProvider(ctx context.Context, id int64) error {
	stmt := `DELETE FROM metadata_provider WHERE id = ?`

	start := time.Now()
	res, err := db.conn.ExecContext(ctx, stmt, id)
	db.trace("delete", "metadata_provider", stmt, start, err)
	if err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProviderNotFound
	}
	return nil
}

func (db *DB) encodeProvider(p *models.ProviderConfig) (apiKey, settings sql.NullString, err error) {
	if p.APIKey != "" {
		sealed, serr := db.secrets.Seal(p.APIKey)
		if serr != nil {
			return apiKey, settings, fmt.Errorf("failed to seal api key: %w", serr)
		}
		apiKey = sql.NullString{String: sealed, Valid: true}
	}
	if p.Settings != nil {
		b, merr := json.Marshal(p.Settings)
		if merr != nil {
			return apiKey, settings, fmt.Errorf("failed to encode settings: %w", merr)
		}
		settings = sql.NullString{String: string(b), Valid: true}
	}
	return apiKey, settings, nil
}

func (db *DB) decodeProvider(row *providerRow) (*models.ProviderConfig, error) {
	p := &models.ProviderConfig{
		ID:        row.ID,
		Type:      models.ProviderType(row.Type),
		Name:      row.Name,
		URL:       row.URL,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.APIKey.Valid {
		key, err := db.secrets.Open(row.APIKey.String)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt api key of provider %d: %w", row.ID, err)
		}
		p.APIKey = key
	}
	if row.Settings.Valid && row.Settings.String != "" {
		if err := json.Unmarshal([]byte(row.Settings.String), &p.Settings); err != nil {
			return nil, fmt.Errorf("failed to decode settings of provider %d: %w", row.ID, err)
		}
	}
	return p, nil
}
