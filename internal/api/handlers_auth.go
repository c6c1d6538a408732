// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package api

import (
	"net/http"

	"github.com/maintainarr/maintainarr/internal/apperrors"
	"github.com/maintainarr/maintainarr/internal/logging"
)

type plexLoginRequest struct {
	AuthToken string `json:"authToken" validate:"required"`
}

// PlexLogin signs in with a Plex token.
//
// @Summary Sign in with Plex
// @Description Verifies the token with plex.tv, creates or refreshes the account and starts a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body plexLoginRequest true "Plex auth token"
// @Success 200 {object} models.APIResponse{data=models.PublicUser}
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Router /auth/plex [post]
func (h *Handler) PlexLogin(w http.ResponseWriter, r *http.Request) {
	var req plexLoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Write(w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	ctx := r.Context()
	acct, err := h.plex.Verify(ctx, req.AuthToken)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	user, err := h.db.UpsertPlexUser(ctx, *acct)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}
	if !user.IsActive {
		h.errors.Write(w, r, apperrors.NewForbidden("Account is disabled"))
		return
	}

	if _, err := h.sessions.Login(ctx, w, user.ID); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	logging.Ctx(ctx).Info().Int64("user_id", user.ID).Msg("User signed in with Plex")
	respondOK(w, user.Public())
}

// Me returns the signed-in user.
//
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.PublicUser}
// @Failure 401 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Router /auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessionUser(r.Context())
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}
	respondOK(w, user.Public())
}

// Logout ends the session and clears the cookie.
//
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context(), w); err != nil {
		h.errors.Write(w, r, err)
		return
	}
	respondOK(w, nil)
}
