// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/maintainarr/maintainarr/internal/apperrors"
	"github.com/maintainarr/maintainarr/internal/auth"
	"github.com/maintainarr/maintainarr/internal/authz"
	"github.com/maintainarr/maintainarr/internal/database"
	"github.com/maintainarr/maintainarr/internal/models"
)

type userKey struct{}

// currentUser returns the user loaded by requireUser.
func currentUser(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey{}).(*models.User)
	return u
}

// sessionUser loads the account behind the request's session. It returns a
// 401 without a session and a 403 for a disabled account.
func (h *Handler) sessionUser(ctx context.Context) (*models.User, error) {
	userID := auth.UserID(ctx)
	if userID == 0 {
		return nil, apperrors.NewUnauthorized("")
	}
	u, err := h.db.GetUser(ctx, userID)
	if errors.Is(err, database.ErrUserNotFound) {
		return nil, apperrors.NewUnauthorized("")
	}
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, apperrors.NewForbidden("Account is disabled")
	}
	return u, nil
}

// requireUser rejects anonymous and disabled callers and stores the user
// and its role in the request context.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := h.sessionUser(r.Context())
		if err != nil {
			h.errors.Write(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), userKey{}, u)
		ctx = authz.WithRole(ctx, u.Role())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
