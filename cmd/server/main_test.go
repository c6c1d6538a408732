// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maintainarr/maintainarr/internal/config"
	"github.com/maintainarr/maintainarr/internal/database"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:       config.EnvTest,
		CommitTag: "local",
		Session: config.SessionConfig{
			Secret: "0123456789abcdef0123456789abcdef",
			TTL:    time.Hour,
		},
		Providers: config.ProvidersConfig{
			Timeout:         5 * time.Second,
			RatingsCacheTTL: time.Hour,
		},
	}
}

func TestBuildApp(t *testing.T) {
	cfg := testConfig()
	secrets, err := config.NewCredentialEncryptor(cfg.Session.Secret)
	if err != nil {
		t.Fatal(err)
	}
	db, err := database.Open(config.DatabaseConfig{Path: database.MemoryPath}, secrets)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	a, err := buildApp(cfg, db)
	if err != nil {
		t.Fatalf("buildApp: %v", err)
	}
	defer a.ratings.Close()

	for _, tc := range []struct {
		path string
		want int
	}{
		{"/api/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/providers", http.StatusUnauthorized},
		{"/api/auth/me", http.StatusUnauthorized},
	} {
		rec := httptest.NewRecorder()
		a.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rec.Code != tc.want {
			t.Errorf("GET %s = %d, want %d", tc.path, rec.Code, tc.want)
		}
	}
}

func TestBuildApp_RejectsEmptySecret(t *testing.T) {
	cfg := testConfig()
	db, err := database.Open(config.DatabaseConfig{Path: database.MemoryPath}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	cfg.Session.Secret = ""
	if _, err := buildApp(cfg, db); err == nil {
		t.Fatal("expected error for empty session secret")
	}
}
