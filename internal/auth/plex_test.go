// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maintainarr/maintainarr/internal/apperrors"
)

func TestPlexAuthenticator_Verify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/account" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("X-Plex-Token") != "good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("X-Plex-Product") != "Maintainarr" {
			t.Errorf("X-Plex-Product = %q", r.Header.Get("X-Plex-Product"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":42,"uuid":"u","username":"owner","email":"Owner@Example.com","thumb":"https://plex.tv/t.png"}}`))
	}))
	defer server.Close()

	a := NewPlexAuthenticator(server.URL, "", "")

	acct, err := a.Verify(context.Background(), "good")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if acct.PlexID != 42 || acct.Username != "owner" || acct.Token != "good" {
		t.Errorf("account = %+v", acct)
	}
	if acct.Avatar != "https://plex.tv/t.png" {
		t.Errorf("Avatar = %q", acct.Avatar)
	}

	_, err = a.Verify(context.Background(), "bad")
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad token err = %v, want 401 AppError", err)
	}
}

func TestPlexAuthenticator_EmptyToken(t *testing.T) {
	a := NewPlexAuthenticator("http://127.0.0.1:1", "", "")
	_, err := a.Verify(context.Background(), "  ")
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Type != apperrors.TypeValidation {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestPlexAuthenticator_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewPlexAuthenticator(server.URL, "", "").Verify(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.From(err).StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", apperrors.From(err).StatusCode)
	}
}
