// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/maintainarr/maintainarr/internal/logging"
)

// DefaultCookieName matches the cookie name used by existing installs.
const DefaultCookieName = "connect.sid"

// ManagerConfig configures the session cookie.
type ManagerConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Manager loads sessions from the request cookie and issues new ones.
type Manager struct {
	store  Store
	signer *CookieSigner
	cfg    ManagerConfig
}

// NewManager creates a session manager.
func NewManager(store Store, signer *CookieSigner, cfg ManagerConfig) *Manager {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultSessionTTL
	}
	return &Manager{store: store, signer: signer, cfg: cfg}
}

type contextKey struct{}

type sessionState struct {
	sid     string
	session *Session
}

// FromContext returns the session loaded for the request, if any.
func FromContext(ctx context.Context) (string, *Session) {
	st, ok := ctx.Value(contextKey{}).(*sessionState)
	if !ok || st == nil {
		return "", nil
	}
	return st.sid, st.session
}

// UserID returns the authenticated user id, or 0.
func UserID(ctx context.Context) int64 {
	_, sess := FromContext(ctx)
	if sess == nil {
		return 0
	}
	return sess.UserID
}

func withSession(ctx context.Context, sid string, sess *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, &sessionState{sid: sid, session: sess})
}

// Load resolves the session cookie and stores the session in the request
// context. Requests without a valid session continue anonymously. Loaded
// sessions are touched so their expiry rolls forward.
func (m *Manager) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cfg.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		sid, err := m.signer.Verify(cookie.Value)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Ignoring session cookie")
			next.ServeHTTP(w, r)
			return
		}

		sess, err := m.store.Get(r.Context(), sid)
		if err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Msg("Session lookup error")
			next.ServeHTTP(w, r)
			return
		}
		if sess == nil {
			next.ServeHTTP(w, r)
			return
		}

		if err := m.store.Touch(r.Context(), sid, sess); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to touch session")
		}
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sid, sess)))
	})
}

// Login starts a fresh session for userID and sets the cookie. Any session
// already attached to the request is destroyed first.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, userID int64) (string, error) {
	if oldSID, _ := FromContext(ctx); oldSID != "" {
		if err := m.store.Destroy(ctx, oldSID); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("Failed to destroy previous session")
		}
	}

	sid := uuid.NewString()
	maxAge := m.cfg.TTL.Milliseconds()
	expires := time.Now().Add(m.cfg.TTL)
	sess := &Session{
		Cookie: Cookie{
			MaxAge:   &maxAge,
			Expires:  &expires,
			HTTPOnly: true,
			Path:     "/",
		},
		UserID: userID,
	}
	if err := m.store.Set(ctx, sid, sess); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	value, err := m.signer.Sign(sid, expires)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(m.cfg.TTL.Seconds()),
		Secure:   m.cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid, nil
}

// Logout destroys the request's session, if any, and clears the cookie.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter) error {
	if sid, _ := FromContext(ctx); sid != "" {
		if err := m.store.Destroy(ctx, sid); err != nil {
			return fmt.Errorf("failed to destroy session: %w", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   m.cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
