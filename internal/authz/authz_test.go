// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maintainarr/maintainarr/internal/apperrors"
)

func TestEnforce(t *testing.T) {
	e, err := NewEnforcer()
	if err != nil {
		t.Fatalf("NewEnforcer: %v", err)
	}

	tests := []struct {
		role, object, action string
		want                 bool
	}{
		{"admin", ObjectProviders, ActionRead, true},
		{"admin", ObjectProviders, ActionWrite, true},
		{"user", ObjectProviders, ActionRead, true},
		{"user", ObjectProviders, ActionWrite, false},
		{"guest", ObjectProviders, ActionRead, false},
		{"admin", "settings", ActionRead, false},
	}
	for _, tt := range tests {
		got, err := e.Enforce(tt.role, tt.object, tt.action)
		if err != nil {
			t.Fatalf("Enforce(%s,%s,%s): %v", tt.role, tt.object, tt.action, err)
		}
		if got != tt.want {
			t.Errorf("Enforce(%s,%s,%s) = %v, want %v", tt.role, tt.object, tt.action, got, tt.want)
		}
	}
}

func TestActionForMethod(t *testing.T) {
	for method, want := range map[string]string{
		http.MethodGet:    ActionRead,
		http.MethodHead:   ActionRead,
		http.MethodPost:   ActionWrite,
		http.MethodPut:    ActionWrite,
		http.MethodDelete: ActionWrite,
	} {
		if got := ActionForMethod(method); got != want {
			t.Errorf("ActionForMethod(%s) = %s, want %s", method, got, want)
		}
	}
}

func TestMiddleware_Authorize(t *testing.T) {
	e, err := NewEnforcer()
	if err != nil {
		t.Fatal(err)
	}
	writeErr := func(w http.ResponseWriter, r *http.Request, err error) {
		w.WriteHeader(apperrors.From(err).StatusCode)
	}
	h := NewMiddleware(e, writeErr).Authorize(ObjectProviders)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }))

	tests := []struct {
		name   string
		role   string
		method string
		want   int
	}{
		{"anonymous", "", http.MethodGet, http.StatusUnauthorized},
		{"user read", "user", http.MethodGet, http.StatusNoContent},
		{"user write", "user", http.MethodPost, http.StatusForbidden},
		{"admin delete", "admin", http.MethodDelete, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/providers", nil)
			if tt.role != "" {
				req = req.WithContext(WithRole(req.Context(), tt.role))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestLoadPolicy_Malformed(t *testing.T) {
	e, err := NewEnforcer()
	if err != nil {
		t.Fatal(err)
	}
	if err := loadPolicy(e.enforcer, "p, only-two"); err == nil {
		t.Fatal("expected error")
	}
	if err := loadPolicy(e.enforcer, "# comment\n\n"); err != nil {
		t.Errorf("comments should be skipped: %v", err)
	}
}
