// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/maintainarr/maintainarr/internal/apperrors"
	"github.com/maintainarr/maintainarr/internal/database"
	"github.com/maintainarr/maintainarr/internal/logging"
	"github.com/maintainarr/maintainarr/internal/models"
)

// providerRequest is the body of POST and PUT /api/providers.
type providerRequest struct {
	Type     string          `json:"type" validate:"required,provider_type"`
	Name     string          `json:"name" validate:"required,max=100"`
	URL      string          `json:"url" validate:"required,url"`
	APIKey   string          `json:"apiKey" validate:"max=512"`
	Settings models.Settings `json:"settings"`
	IsActive *bool           `json:"isActive"`
}

func (req *providerRequest) normalize() {
	req.Type = normalizeType(req.Type)
	req.Name = strings.TrimSpace(req.Name)
	req.URL = strings.TrimSpace(req.URL)
}

// mapProviderError turns repository errors into API errors.
func mapProviderError(err error) error {
	switch {
	case errors.Is(err, database.ErrProviderNotFound):
		return apperrors.NewNotFound("Provider")
	case errors.Is(err, database.ErrProviderNameConflict):
		return apperrors.NewConflict("A provider with this name already exists")
	default:
		return err
	}
}

func (h *Handler) loadProvider(r *http.Request) (*models.ProviderConfig, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	p, err := h.db.GetProvider(r.Context(), id)
	if err != nil {
		return nil, mapProviderError(err)
	}
	return p, nil
}

// ListProviders lists stored providers with masked keys.
//
// @Summary List providers
// @Tags Providers
// @Produce json
// @Param type query string false "Comma separated provider types"
// @Param active query bool false "Only active or inactive providers"
// @Success 200 {object} models.APIResponse{data=[]models.ProviderConfig}
// @Failure 401 {object} models.APIResponse
// @Router /providers [get]
func (h *Handler) ListProviders(w http.ResponseWriter, r *http.Request) {
	var filter database.ProviderFilter
	if raw := r.URL.Query().Get("type"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			pt := models.ProviderType(normalizeType(t))
			if !pt.IsValid() {
				h.errors.Write(w, r, apperrors.NewValidation("Validation failed",
					apperrors.FieldError{Field: "type", Message: "unknown provider type " + string(pt)}))
				return
			}
			filter.Types = append(filter.Types, pt)
		}
	}
	if raw := r.URL.Query().Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			h.errors.Write(w, r, apperrors.NewValidation("Validation failed",
				apperrors.FieldError{Field: "active", Message: "active must be a boolean"}))
			return
		}
		filter.Active = &active
	}

	list, err := h.db.ListProviders(r.Context(), filter)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}
	out := make([]models.ProviderConfig, len(list))
	for i := range list {
		out[i] = list[i].Masked()
	}
	respondOK(w, out)
}

// CreateProvider stores a new provider configuration.
//
// @Summary Create provider
// @Tags Providers
// @Accept json
// @Produce json
// @Param body body providerRequest true "Provider"
// @Success 201 {object} models.APIResponse{data=models.ProviderConfig}
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /providers [post]
func (h *Handler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var req providerRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Write(w, r, err)
		return
	}
	req.normalize()
	if err := validateRequest(&req); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	p := &models.ProviderConfig{
		Type:     models.ProviderType(req.Type),
		Name:     req.Name,
		URL:      req.URL,
		APIKey:   req.APIKey,
		Settings: req.Settings,
		IsActive: req.IsActive == nil || *req.IsActive,
	}
	if err := h.db.CreateProvider(r.Context(), p); err != nil {
		h.errors.Write(w, r, mapProviderError(err))
		return
	}

	logging.Ctx(r.Context()).Info().
		Int64("provider_id", p.ID).
		Str("type", string(p.Type)).
		Int64("user_id", userIDOf(r)).
		Msg("Provider created")
	respondCreated(w, p.Masked())
}

// GetProvider returns one provider with a masked key.
//
// @Summary Get provider
// @Tags Providers
// @Produce json
// @Param id path int true "Provider ID"
// @Success 200 {object} models.APIResponse{data=models.ProviderConfig}
// @Failure 404 {object} models.APIResponse
// @Router /providers/{id} [get]
func (h *Handler) GetProvider(w http.ResponseWriter, r *http.Request) {
	p, err := h.loadProvider(r)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}
	respondOK(w, p.Masked())
}

// UpdateProvider replaces a provider configuration. Sending the masked key
// back, or no key, keeps the stored one.
//
// @Summary Update provider
// @Tags Providers
// @Accept json
// @Produce json
// @Param id path int true "Provider ID"
// @Param body body providerRequest true "Provider"
// @Success 200 {object} models.APIResponse{data=models.ProviderConfig}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /providers/{id} [put]
func (h *Handler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	existing, err := h.loadProvider(r)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	var req providerRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Write(w, r, err)
		return
	}
	req.normalize()
	if err := validateRequest(&req); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	existing.Type = models.ProviderType(req.Type)
	existing.Name = req.Name
	existing.URL = req.URL
	existing.Settings = req.Settings
	if req.APIKey != "" && req.APIKey != models.MaskedSecret {
		existing.APIKey = req.APIKey
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.db.UpdateProvider(r.Context(), existing); err != nil {
		h.errors.Write(w, r, mapProviderError(err))
		return
	}
	respondOK(w, existing.Masked())
}

// DeleteProvider removes a provider.
//
// @Summary Delete provider
// @Tags Providers
// @Produce json
// @Param id path int true "Provider ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /providers/{id} [delete]
func (h *Handler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}
	if err := h.db.DeleteProvider(r.Context(), id); err != nil {
		h.errors.Write(w, r, mapProviderError(err))
		return
	}
	logging.Ctx(r.Context()).Info().Int64("provider_id", id).Int64("user_id", userIDOf(r)).Msg("Provider deleted")
	respondOK(w, nil)
}

func userIDOf(r *http.Request) int64 {
	if u := currentUser(r.Context()); u != nil {
		return u.ID
	}
	return 0
}
