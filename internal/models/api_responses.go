// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package models

import "github.com/maintainarr/maintainarr/internal/apperrors"

// Envelope status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// APIResponse is the envelope wrapping every JSON response.
//
//	{"status":"ok","data":{...}}
//	{"status":"error","error":{"type":"VALIDATION_ERROR","message":"...","errors":[...]}}
type APIResponse struct {
	Status string          `json:"status"`
	Data   interface{}     `json:"data,omitempty"`
	Error  *apperrors.Body `json:"error,omitempty"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}
