// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package config

import (
	"fmt"
	"strings"
)

const invalidPrefix = "Invalid configuration"

var (
	validEnvs      = []string{EnvDevelopment, EnvProduction, EnvTest}
	validLogLevels = []string{"trace", "debug", "info", "warn", "error"}
	validFormats   = []string{"json", "console"}
)

// Validate checks that the configuration is usable. Every error message
// starts with "Invalid configuration".
func (c *Config) Validate() error {
	if err := c.validateEnv(); err != nil {
		return invalid(err)
	}
	if err := c.validateServer(); err != nil {
		return invalid(err)
	}
	if err := c.validateLogging(); err != nil {
		return invalid(err)
	}
	if err := c.validateDatabase(); err != nil {
		return invalid(err)
	}
	if err := c.validateSession(); err != nil {
		return invalid(err)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%s: %w", invalidPrefix, err)
}

func (c *Config) validateEnv() error {
	if !contains(validEnvs, c.Env) {
		return fmt.Errorf("NODE_ENV must be one of %s, got %q", strings.Join(validEnvs, ", "), c.Env)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !contains(validLogLevels, c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.Logging.Level)
	}
	if c.Logging.Format != "" && !contains(validFormats, c.Logging.Format) {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("DB_PATH must be \":memory:\" or a file path")
	}
	return nil
}

func (c *Config) validateSession() error {
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}
	if c.IsProduction() && c.Session.Secret == DefaultSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be changed from the default in production")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.PurgeBatch < 1 {
		return fmt.Errorf("session.purge_batch must be at least 1")
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
