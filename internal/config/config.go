// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package config

import "time"

// Runtime environments accepted in NODE_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// DefaultSessionSecret is the development-only session secret. Production
// refuses to start while it is in use.
const DefaultSessionSecret = "maintainarr-insecure-development-secret"

// Config holds all application configuration.
type Config struct {
	// Env is the runtime environment (NODE_ENV).
	Env string `koanf:"env"`

	// CommitTag identifies the build (COMMIT_TAG) and is reported as the version.
	CommitTag string `koanf:"commit_tag"`

	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Database  DatabaseConfig  `koanf:"database"`
	Session   SessionConfig   `koanf:"session"`
	Providers ProvidersConfig `koanf:"providers"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	TrustProxy      bool          `koanf:"trust_proxy"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Dir    string `koanf:"dir"`
	Caller bool   `koanf:"caller"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	// Path is a file path or ":memory:".
	Path    string `koanf:"path"`
	Logging bool   `koanf:"logging"`
}

// SessionConfig holds cookie session settings.
type SessionConfig struct {
	Secret     string        `koanf:"secret"`
	CookieName string        `koanf:"cookie_name"`
	TTL        time.Duration `koanf:"ttl"`
	// PurgeBatch bounds how many expired rows one write removes.
	PurgeBatch int `koanf:"purge_batch"`
}

// ProvidersConfig holds outbound provider settings.
type ProvidersConfig struct {
	TMDBAPIKey      string        `koanf:"tmdb_api_key"`
	Timeout         time.Duration `koanf:"timeout"`
	RatingsCacheTTL time.Duration `koanf:"ratings_cache_ttl"`
	BreakerEnabled  bool          `koanf:"breaker_enabled"`
}

// IsProduction reports whether NODE_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Version is the build identifier reported by the health endpoint.
func (c *Config) Version() string {
	return c.CommitTag
}
