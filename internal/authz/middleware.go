// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package authz

import (
	"context"
	"net/http"

	"github.com/maintainarr/maintainarr/internal/apperrors"
	"github.com/maintainarr/maintainarr/internal/logging"
)

type roleKey struct{}

// WithRole stores the caller's role in ctx.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

// RoleFromContext returns the role stored by WithRole.
func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(roleKey{}).(string)
	return role
}

// ErrorWriter renders an error response.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// Middleware guards routes with the Enforcer. It expects an earlier
// middleware to have stored the caller's role with WithRole.
type Middleware struct {
	enforcer *Enforcer
	writeErr ErrorWriter
}

// NewMiddleware creates the authorization middleware.
func NewMiddleware(enforcer *Enforcer, writeErr ErrorWriter) *Middleware {
	return &Middleware{enforcer: enforcer, writeErr: writeErr}
}

// Authorize allows the request when the caller's role may perform the
// action matching the request method on object.
func (m *Middleware) Authorize(object string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if role == "" {
				m.writeErr(w, r, apperrors.NewUnauthorized(""))
				return
			}

			action := ActionForMethod(r.Method)
			allowed, err := m.enforcer.Enforce(role, object, action)
			if err != nil {
				logging.Ctx(r.Context()).Error().Err(err).Msg("Authorization error")
				m.writeErr(w, r, err)
				return
			}
			if !allowed {
				logging.Ctx(r.Context()).Debug().
					Str("role", role).Str("object", object).Str("action", action).
					Msg("Access denied")
				m.writeErr(w, r, apperrors.NewForbidden("Insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
