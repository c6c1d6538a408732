// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/maintainarr/maintainarr/internal/apperrors"
	"github.com/maintainarr/maintainarr/internal/logging"
	"github.com/maintainarr/maintainarr/internal/models"
)

// respondJSON writes v as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// respondOK writes {status:"ok", data}. A nil data omits the member.
func respondOK(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, models.APIResponse{Status: models.StatusOK, Data: data})
}

func respondCreated(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusCreated, models.APIResponse{Status: models.StatusOK, Data: data})
}

// ErrorResponder renders errors in the error envelope. Messages of
// unexpected errors are redacted in production.
type ErrorResponder struct {
	Production bool
}

// Write classifies err and writes the error envelope.
func (e ErrorResponder) Write(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.From(err)

	logger := logging.Ctx(r.Context())
	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", appErr.StatusCode).
			Msg("Request failed")
	} else {
		logger.Debug().Err(err).Int("status", appErr.StatusCode).Msg("Request rejected")
	}

	body := appErr.ToBody(e.Production)
	respondJSON(w, appErr.StatusCode, models.APIResponse{Status: models.StatusError, Error: &body})
}
