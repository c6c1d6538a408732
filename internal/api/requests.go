// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/maintainarr/maintainarr/internal/apperrors"
	"github.com/maintainarr/maintainarr/internal/models"
	"github.com/maintainarr/maintainarr/internal/validation"
)

const maxBodyBytes = 1 << 20

// decodeBody reads a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.NewValidation("Request body is required")
		}
		return apperrors.NewValidation("Invalid JSON body")
	}
	return nil
}

// validateRequest runs the struct validator and converts failures into a
// 400 ValidationError.
func validateRequest(v interface{}) error {
	if verr := validation.ValidateStruct(v); verr != nil {
		return verr.ToAppError()
	}
	return nil
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidation("Invalid id",
			apperrors.FieldError{Field: "id", Message: "id must be a positive integer"})
	}
	return id, nil
}

// parseSettings decodes a settings query value. Validation has already
// checked that it is a JSON object.
func parseSettings(raw string) (models.Settings, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.Settings{}, nil
	}
	var s models.Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, apperrors.NewValidation("Validation failed",
			apperrors.FieldError{Field: "settings", Message: "settings must be a JSON object"})
	}
	return s, nil
}

// normalizeType uppercases a provider type so "sonarr" and "SONARR" match.
func normalizeType(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}
