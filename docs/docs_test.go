// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package docs

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/swaggo/swag"
)

func TestRegisteredDocumentIsValidJSON(t *testing.T) {
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var doc struct {
		Swagger  string                     `json:"swagger"`
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}
	if doc.Swagger != "2.0" || doc.BasePath != "/api" {
		t.Errorf("header = %q %q", doc.Swagger, doc.BasePath)
	}
	for _, p := range []string{"/health", "/providers/metadata", "/providers/ratings", "/auth/plex", "/providers/{id}"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Errorf("path %s missing", p)
		}
	}
}
