// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestManager(t *testing.T) (*Manager, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore(time.Hour)
	signer, err := NewCookieSigner("test-secret")
	if err != nil {
		t.Fatal(err)
	}
	return NewManager(store, signer, ManagerConfig{TTL: time.Hour}), store
}

func loginCookie(t *testing.T, m *Manager, userID int64) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	if _, err := m.Login(context.Background(), rec, userID); err != nil {
		t.Fatalf("Login: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	return cookies[0]
}

func TestManager_LoginThenLoad(t *testing.T) {
	m, _ := newTestManager(t)
	cookie := loginCookie(t, m, 5)

	if cookie.Name != DefaultCookieName {
		t.Errorf("cookie name = %q", cookie.Name)
	}
	if !cookie.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}

	var gotUser int64
	h := m.Load(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if gotUser != 5 {
		t.Errorf("UserID = %d, want 5", gotUser)
	}
}

func TestManager_LoadIgnoresBadCookies(t *testing.T) {
	m, _ := newTestManager(t)

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"none", nil},
		{"forged", &http.Cookie{Name: DefaultCookieName, Value: "forged"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := m.Load(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				if sid, sess := FromContext(r.Context()); sid != "" || sess != nil {
					t.Errorf("unexpected session %q", sid)
				}
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			if !called {
				t.Error("next handler not called")
			}
		})
	}
}

func TestManager_Logout(t *testing.T) {
	m, store := newTestManager(t)
	cookie := loginCookie(t, m, 1)

	var rec *httptest.ResponseRecorder
	h := m.Load(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec = httptest.NewRecorder()
		if err := m.Logout(r.Context(), rec); err != nil {
			t.Fatalf("Logout: %v", err)
		}
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if store.Len() != 0 {
		t.Errorf("store Len = %d, want 0", store.Len())
	}
	cleared := rec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("cookie not cleared: %+v", cleared)
	}
}

func TestManager_LoginReplacesSession(t *testing.T) {
	m, store := newTestManager(t)
	first := loginCookie(t, m, 1)

	h := m.Load(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := m.Login(r.Context(), httptest.NewRecorder(), 1); err != nil {
			t.Fatal(err)
		}
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/auth/plex", nil)
	req.AddCookie(first)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if store.Len() != 1 {
		t.Errorf("store Len = %d, want 1", store.Len())
	}
}
