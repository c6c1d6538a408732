// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar names an optional YAML file loaded between defaults and env.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config/maintainarr.yaml",
	"/config/maintainarr.yaml",
}

func defaultConfig() *Config {
	return &Config{
		Env:       EnvDevelopment,
		CommitTag: "local",
		Server: ServerConfig{
			Host:            "",
			Port:            5057,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"http://localhost:3000"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Database: DatabaseConfig{
			Path: "config/db/maintainarr.db",
		},
		Session: SessionConfig{
			Secret:     DefaultSessionSecret,
			CookieName: "connect.sid",
			TTL:        30 * 24 * time.Hour,
			PurgeBatch: 100,
		},
		Providers: ProvidersConfig{
			Timeout:         10 * time.Second,
			RatingsCacheTTL: time.Hour,
			BreakerEnabled:  true,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing priority, and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		// A non-numeric PORT fails here rather than in Validate.
		return nil, fmt.Errorf("%s: %w", invalidPrefix, err)
	}

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
		if cfg.Env == EnvDevelopment {
			cfg.Logging.Format = "console"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields splits comma-separated env values for slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	"node_env":                 "env",
	"commit_tag":               "commit_tag",
	"host":                     "server.host",
	"port":                     "server.port",
	"trust_proxy":              "server.trust_proxy",
	"cors_origins":             "server.cors_origins",
	"log_level":                "logging.level",
	"log_format":               "logging.format",
	"log_dir":                  "logging.dir",
	"log_caller":               "logging.caller",
	"db_path":                  "database.path",
	"db_logging":               "database.logging",
	"session_secret":           "session.secret",
	"session_ttl":              "session.ttl",
	"tmdb_api_key":             "providers.tmdb_api_key",
	"ratings_cache_ttl":        "providers.ratings_cache_ttl",
	"provider_breaker_enabled": "providers.breaker_enabled",
}

// envTransformFunc maps environment variable names to koanf paths. Unmapped
// variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
