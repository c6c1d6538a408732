// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package models

import (
	"fmt"
	"strings"
	"time"
)

// ProviderType identifies an external service.
type ProviderType string

// Known provider types.
const (
	ProviderRadarr    ProviderType = "RADARR"
	ProviderSonarr    ProviderType = "SONARR"
	ProviderPlex      ProviderType = "PLEX"
	ProviderJellyfin  ProviderType = "JELLYFIN"
	ProviderTautulli  ProviderType = "TAUTULLI"
	ProviderOverseerr ProviderType = "OVERSEERR"
	ProviderSeerr     ProviderType = "SEERR"
	ProviderTMDB      ProviderType = "TMDB"
	ProviderOMDB      ProviderType = "OMDB"
	ProviderTVMaze    ProviderType = "TVMAZE"
)

// ProviderTypes lists every known provider type in display order.
var ProviderTypes = []ProviderType{
	ProviderRadarr, ProviderSonarr, ProviderPlex, ProviderJellyfin, ProviderTautulli,
	ProviderOverseerr, ProviderSeerr, ProviderTMDB, ProviderOMDB, ProviderTVMaze,
}

// IsValid reports whether t is a known provider type.
func (t ProviderType) IsValid() bool {
	for _, known := range ProviderTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Settings holds free-form provider settings such as urlBase or userId.
type Settings map[string]interface{}

// String returns the setting under key as a trimmed string. Numbers are
// formatted without a fractional part when they are whole.
func (s Settings) String(key string) string {
	if s == nil {
		return ""
	}
	switch v := s[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// ProviderConfig describes one configured instance of an external service.
// Ad-hoc configs built for a single request carry ID 0.
type ProviderConfig struct {
	ID        int64        `json:"id"`
	Type      ProviderType `json:"type"`
	Name      string       `json:"name"`
	URL       string       `json:"url"`
	APIKey    string       `json:"apiKey,omitempty"`
	Settings  Settings     `json:"settings"`
	IsActive  bool         `json:"isActive"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// NewAdHocProviderConfig builds the transient config used by the metadata
// endpoint when no stored provider is referenced.
func NewAdHocProviderConfig(t ProviderType, url, apiKey string, settings Settings) ProviderConfig {
	now := time.Now()
	return ProviderConfig{
		ID:        0,
		Type:      t,
		Name:      "adhoc-" + strings.ToLower(string(t)),
		URL:       url,
		APIKey:    apiKey,
		Settings:  settings,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Masked returns a copy with the API key replaced by a fixed placeholder.
func (p ProviderConfig) Masked() ProviderConfig {
	if p.APIKey != "" {
		p.APIKey = MaskedSecret
	}
	return p
}

// MaskedSecret replaces stored secrets in API responses.
const MaskedSecret = "********"
