// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points CONFIG_PATH at a missing file so a developer's local YAML
// file cannot leak into tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	for _, name := range []string{"NODE_ENV", "PORT", "LOG_LEVEL", "LOG_FORMAT", "SESSION_SECRET", "DB_PATH", "CORS_ORIGINS"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 5057 {
		t.Errorf("Server.Port = %d, want 5057", cfg.Server.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.Providers.Timeout != 10*time.Second {
		t.Errorf("Providers.Timeout = %v, want 10s", cfg.Providers.Timeout)
	}
	if cfg.Session.CookieName != "connect.sid" {
		t.Errorf("Session.CookieName = %q", cfg.Session.CookieName)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("NODE_ENV", "test")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("DB_LOGGING", "true")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("COMMIT_TAG", "abc1234")
	t.Setenv("TMDB_API_KEY", "tmdb-key")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Format = %q, want json outside development", cfg.Logging.Format)
	}
	if cfg.Database.Path != ":memory:" || !cfg.Database.Logging {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if !cfg.Server.TrustProxy {
		t.Error("TrustProxy should be true")
	}
	if cfg.Version() != "abc1234" {
		t.Errorf("Version = %q", cfg.Version())
	}
	if cfg.Providers.TMDBAPIKey != "tmdb-key" {
		t.Errorf("TMDBAPIKey = %q", cfg.Providers.TMDBAPIKey)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://b.test" {
		t.Errorf("CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "maintainarr.yaml")
	yaml := "server:\n  port: 6000\nlogging:\n  level: warn\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 6000 {
		t.Errorf("Port = %d, want 6000 from file", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("env should win over file, got %q", cfg.Logging.Level)
	}
}

func TestLoad_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"port zero", map[string]string{"PORT": "0"}, "PORT must be between 1 and 65535"},
		{"port too large", map[string]string{"PORT": "65536"}, "PORT must be between 1 and 65535"},
		{"port not a number", map[string]string{"PORT": "http"}, ""},
		{"bad node env", map[string]string{"NODE_ENV": "staging"}, "NODE_ENV must be one of"},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL must be one of"},
		{"default secret in production", map[string]string{"NODE_ENV": "production"}, "SESSION_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), "Invalid configuration") {
				t.Errorf("error %q should start with Invalid configuration", err)
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad_ProductionWithSecret(t *testing.T) {
	isolate(t)
	t.Setenv("NODE_ENV", "production")
	t.Setenv("SESSION_SECRET", "a-real-production-secret-value")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"NODE_ENV":       "env",
		"PORT":           "server.port",
		"LOG_DIR":        "logging.dir",
		"DB_PATH":        "database.path",
		"SESSION_SECRET": "session.secret",
		"HOME":           "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}
