// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package api

import (
	"net/http"
	"time"

	"github.com/maintainarr/maintainarr/internal/models"
)

// isoMillis matches JavaScript's Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Health reports that the process is serving.
//
// @Summary Health check
// @Description Returns status, server time, build version and runtime environment
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.errors.Write(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, models.HealthResponse{
		Status:      models.StatusOK,
		Timestamp:   time.Now().UTC().Format(isoMillis),
		Version:     h.cfg.Version(),
		Environment: h.cfg.Env,
	})
}
