// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package api

import (
	"net/http"

	"github.com/maintainarr/maintainarr/internal/apperrors"
	"github.com/maintainarr/maintainarr/internal/models"
)

// metadataQuery is the query string of GET /api/providers/metadata.
type metadataQuery struct {
	Type     string `query:"type" validate:"required,provider_type"`
	URL      string `query:"url" validate:"required"`
	APIKey   string `query:"apiKey"`
	Settings string `query:"settings" validate:"omitempty,json_object"`
}

// MetadataResult is the data member of a metadata response.
type MetadataResult struct {
	Type models.ProviderType    `json:"type"`
	Data map[string]interface{} `json:"data,omitempty"`
}

// ProviderMetadata fetches everything a provider offers using connection
// details from the query string.
//
// @Summary Fetch provider metadata
// @Description Calls every endpoint of the provider adapter concurrently. Rating sources return an empty body.
// @Tags Providers
// @Produce json
// @Param type query string true "Provider type" Enums(RADARR,SONARR,PLEX,JELLYFIN,TAUTULLI,OVERSEERR,SEERR,TMDB,OMDB,TVMAZE)
// @Param url query string true "Provider base URL"
// @Param apiKey query string false "API key or token"
// @Param settings query string false "JSON object with urlBase, userId, libraryKey or libraryId"
// @Success 200 {object} models.APIResponse{data=MetadataResult}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /providers/metadata [get]
func (h *Handler) ProviderMetadata(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := metadataQuery{
		Type:     normalizeType(q.Get("type")),
		URL:      q.Get("url"),
		APIKey:   q.Get("apiKey"),
		Settings: q.Get("settings"),
	}
	if err := validateRequest(&req); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	settings, err := parseSettings(req.Settings)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	cfg := models.NewAdHocProviderConfig(models.ProviderType(req.Type), req.URL, req.APIKey, settings)
	h.dispatch(w, r, cfg)
}

// StoredProviderMetadata runs the same dispatch for a stored provider.
//
// @Summary Fetch metadata of a stored provider
// @Tags Providers
// @Produce json
// @Param id path int true "Provider ID"
// @Success 200 {object} models.APIResponse{data=MetadataResult}
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Provider is inactive"
// @Router /providers/{id}/metadata [get]
func (h *Handler) StoredProviderMetadata(w http.ResponseWriter, r *http.Request) {
	p, err := h.loadProvider(r)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}
	if !p.IsActive {
		h.errors.Write(w, r, apperrors.NewConflict("Provider is inactive"))
		return
	}
	h.dispatch(w, r, *p)
}

func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request, cfg models.ProviderConfig) {
	data, err := h.providers.Dispatch(r.Context(), cfg)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}
	if data == nil {
		respondOK(w, nil)
		return
	}
	respondOK(w, MetadataResult{Type: cfg.Type, Data: data})
}
