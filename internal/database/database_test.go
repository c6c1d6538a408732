// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package database

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maintainarr/maintainarr/internal/config"
	"github.com/maintainarr/maintainarr/internal/models"
)

func setupTestDB(t *testing.T, secrets SecretSealer) *DB {
	t.Helper()
	db, err := Open(config.DatabaseConfig{Path: MemoryPath}, secrets)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_RequiresPath(t *testing.T) {
	if _, err := Open(config.DatabaseConfig{}, nil); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestOpen_FileDatabaseReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "db.sqlite3")

	db, err := Open(config.DatabaseConfig{Path: path}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ctx := context.Background()
	if _, err := db.UpsertPlexUser(ctx, PlexAccount{PlexID: 1, Email: "a@example.com"}); err != nil {
		t.Fatalf("UpsertPlexUser: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Migrations are idempotent on an already migrated file.
	db, err = Open(config.DatabaseConfig{Path: path}, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	n, err := db.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if n != 1 {
		t.Errorf("CountUsers = %d, want 1", n)
	}
}

func TestUpsertPlexUser(t *testing.T) {
	db := setupTestDB(t, nil)
	ctx := context.Background()

	first, err := db.UpsertPlexUser(ctx, PlexAccount{
		PlexID:   42,
		Email:    " Owner@Example.com ",
		Username: "owner",
		Token:    "tok-1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("ID = %d, want 1", first.ID)
	}
	if first.Email != "owner@example.com" {
		t.Errorf("Email = %q", first.Email)
	}
	if first.UserType != models.UserTypePlex {
		t.Errorf("UserType = %d", first.UserType)
	}
	if !first.IsActive {
		t.Error("new user should be active")
	}
	if first.Role() != models.RoleAdmin {
		t.Errorf("Role = %q, want admin", first.Role())
	}

	second, err := db.UpsertPlexUser(ctx, PlexAccount{
		PlexID:   42,
		Email:    "owner@example.com",
		Username: "renamed",
		Avatar:   "https://plex.tv/a.png",
		Token:    "tok-2",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("update created a new user: %d", second.ID)
	}
	if second.PlexToken == nil || *second.PlexToken != "tok-2" {
		t.Errorf("token not refreshed: %v", second.PlexToken)
	}
	if second.PlexUsername == nil || *second.PlexUsername != "renamed" {
		t.Errorf("username not refreshed: %v", second.PlexUsername)
	}

	n, _ := db.CountUsers(ctx)
	if n != 1 {
		t.Errorf("CountUsers = %d, want 1", n)
	}
}

func TestUpsertPlexUser_KeepsExistingPlexID(t *testing.T) {
	db := setupTestDB(t, nil)
	ctx := context.Background()

	if _, err := db.UpsertPlexUser(ctx, PlexAccount{PlexID: 7, Email: "x@example.com"}); err != nil {
		t.Fatal(err)
	}
	// Same email, different Plex ID: matched by email, plex_id is kept.
	u, err := db.UpsertPlexUser(ctx, PlexAccount{PlexID: 8, Email: "x@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if u.PlexID == nil || *u.PlexID != 7 {
		t.Errorf("PlexID = %v, want 7", u.PlexID)
	}
}

func TestUpsertPlexUser_RequiresEmail(t *testing.T) {
	db := setupTestDB(t, nil)
	if _, err := db.UpsertPlexUser(context.Background(), PlexAccount{PlexID: 1}); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetUser_NotFound(t *testing.T) {
	db := setupTestDB(t, nil)
	_, err := db.GetUser(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
	if err := db.SetUserActive(context.Background(), 99, false); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("SetUserActive err = %v", err)
	}
}

func TestSetUserActive(t *testing.T) {
	db := setupTestDB(t, nil)
	ctx := context.Background()
	u, err := db.UpsertPlexUser(ctx, PlexAccount{PlexID: 1, Email: "a@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.SetUserActive(ctx, u.ID, false); err != nil {
		t.Fatal(err)
	}
	got, _ := db.GetUser(ctx, u.ID)
	if got.IsActive {
		t.Error("user should be inactive")
	}
}

func TestProviderCRUD(t *testing.T) {
	db := setupTestDB(t, nil)
	ctx := context.Background()

	p := &models.ProviderConfig{
		Type:     models.ProviderRadarr,
		Name:     "Radarr 4K",
		URL:      "http://radarr:7878",
		APIKey:   "secret",
		Settings: models.Settings{"urlBase": "/radarr"},
		IsActive: true,
	}
	if err := db.CreateProvider(ctx, p); err != nil {
		t.Fatalf("CreateProvider: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("ID not assigned")
	}

	got, err := db.GetProvider(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProvider: %v", err)
	}
	if got.Name != "Radarr 4K" || got.APIKey != "secret" {
		t.Errorf("got %+v", got)
	}
	if got.Settings.String("urlBase") != "/radarr" {
		t.Errorf("settings = %v", got.Settings)
	}

	dup := &models.ProviderConfig{Type: models.ProviderSonarr, Name: "Radarr 4K", URL: "http://x"}
	if err := db.CreateProvider(ctx, dup); !errors.Is(err, ErrProviderNameConflict) {
		t.Errorf("duplicate create err = %v", err)
	}

	got.URL = "http://radarr:7879"
	got.IsActive = false
	if err := db.UpdateProvider(ctx, got); err != nil {
		t.Fatalf("UpdateProvider: %v", err)
	}
	again, _ := db.GetProvider(ctx, p.ID)
	if again.URL != "http://radarr:7879" || again.IsActive {
		t.Errorf("update not persisted: %+v", again)
	}

	if err := db.DeleteProvider(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProvider: %v", err)
	}
	if _, err := db.GetProvider(ctx, p.ID); !errors.Is(err, ErrProviderNotFound) {
		t.Errorf("after delete err = %v", err)
	}
	if err := db.DeleteProvider(ctx, p.ID); !errors.Is(err, ErrProviderNotFound) {
		t.Errorf("second delete err = %v", err)
	}
	missing := &models.ProviderConfig{ID: 404, Type: models.ProviderPlex, Name: "n", URL: "http://x"}
	if err := db.UpdateProvider(ctx, missing); !errors.Is(err, ErrProviderNotFound) {
		t.Errorf("update missing err = %v", err)
	}
}

func TestListProviders_Filter(t *testing.T) {
	db := setupTestDB(t, nil)
	ctx := context.Background()

	for _, p := range []models.ProviderConfig{
		{Type: models.ProviderSonarr, Name: "b-sonarr", URL: "http://s", IsActive: true},
		{Type: models.ProviderRadarr, Name: "a-radarr", URL: "http://r", IsActive: true},
		{Type: models.ProviderPlex, Name: "c-plex", URL: "http://p", IsActive: false},
	} {
		p := p
		if err := db.CreateProvider(ctx, &p); err != nil {
			t.Fatal(err)
		}
	}

	all, err := db.ListProviders(ctx, ProviderFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].Name != "a-radarr" {
		t.Errorf("all = %+v", all)
	}

	active := true
	got, _ := db.ListProviders(ctx, ProviderFilter{Active: &active})
	if len(got) != 2 {
		t.Errorf("active count = %d, want 2", len(got))
	}

	got, _ = db.ListProviders(ctx, ProviderFilter{Types: []models.ProviderType{models.ProviderPlex, models.ProviderSonarr}})
	if len(got) != 2 {
		t.Errorf("typed count = %d, want 2", len(got))
	}

	got, _ = db.ListProviders(ctx, ProviderFilter{Types: []models.ProviderType{models.ProviderPlex}, Active: &active})
	if len(got) != 0 {
		t.Errorf("plex active count = %d, want 0", len(got))
	}
}

func TestCredentialsSealedAtRest(t *testing.T) {
	enc, err := config.NewCredentialEncryptor("test-secret")
	if err != nil {
		t.Fatal(err)
	}
	db := setupTestDB(t, enc)
	ctx := context.Background()

	p := &models.ProviderConfig{Type: models.ProviderOMDB, Name: "omdb", URL: "http://o", APIKey: "plain-key"}
	if err := db.CreateProvider(ctx, p); err != nil {
		t.Fatal(err)
	}
	if _, err := db.UpsertPlexUser(ctx, PlexAccount{PlexID: 1, Email: "a@example.com", Token: "plex-token"}); err != nil {
		t.Fatal(err)
	}

	var rawKey, rawToken string
	if err := db.conn.Get(&rawKey, `SELECT api_key FROM metadata_provider WHERE id = ?`, p.ID); err != nil {
		t.Fatal(err)
	}
	if err := db.conn.Get(&rawToken, `SELECT plex_token FROM "user" WHERE id = 1`); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(rawKey, "plain-key") || strings.Contains(rawToken, "plex-token") {
		t.Errorf("credentials stored in plain text: %q %q", rawKey, rawToken)
	}

	got, _ := db.GetProvider(ctx, p.ID)
	if got.APIKey != "plain-key" {
		t.Errorf("APIKey = %q", got.APIKey)
	}
	u, _ := db.GetUser(ctx, 1)
	if u.PlexToken == nil || *u.PlexToken != "plex-token" {
		t.Errorf("PlexToken = %v", u.PlexToken)
	}
}

func TestSessions(t *testing.T) {
	db := setupTestDB(t, nil)
	ctx := context.Background()

	if _, err := db.GetSession(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}

	if err := db.UpsertSession(ctx, "sid", 1000, `{"userId":1}`); err != nil {
		t.Fatal(err)
	}
	if err := db.UpsertSession(ctx, "sid", 2000, `{"userId":2}`); err != nil {
		t.Fatal(err)
	}
	row, err := db.GetSession(ctx, "sid")
	if err != nil {
		t.Fatal(err)
	}
	if row.ExpiredAt != 2000 || row.JSON != `{"userId":2}` {
		t.Errorf("row = %+v", row)
	}

	if err := db.TouchSession(ctx, "sid", 3000); err != nil {
		t.Fatal(err)
	}
	row, _ = db.GetSession(ctx, "sid")
	if row.ExpiredAt != 3000 || row.JSON != `{"userId":2}` {
		t.Errorf("touch changed more than expiry: %+v", row)
	}

	if err := db.DeleteSession(ctx, "sid"); err != nil {
		t.Fatal(err)
	}
	if err := db.DeleteSession(ctx, "sid"); err != nil {
		t.Errorf("deleting a missing session: %v", err)
	}
}

func TestPurgeExpiredSessions(t *testing.T) {
	db := setupTestDB(t, nil)
	ctx := context.Background()

	for _, s := range []struct {
		id  string
		exp int64
	}{
		{"old-1", 100}, {"old-2", 200}, {"old-3", 300}, {"current", 100}, {"live", 10_000},
	} {
		if err := db.UpsertSession(ctx, s.id, s.exp, "{}"); err != nil {
			t.Fatal(err)
		}
	}

	n, err := db.PurgeExpiredSessions(ctx, 500, "current", 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("first purge = %d, want 2", n)
	}
	n, _ = db.PurgeExpiredSessions(ctx, 500, "current", 2)
	if n != 1 {
		t.Errorf("second purge = %d, want 1", n)
	}

	if _, err := db.GetSession(ctx, "current"); err != nil {
		t.Errorf("current session purged: %v", err)
	}
	if _, err := db.GetSession(ctx, "live"); err != nil {
		t.Errorf("live session purged: %v", err)
	}
}
