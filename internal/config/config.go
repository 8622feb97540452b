// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the seeder configuration loaded from environment variables.
// The write token is intentionally not marked required here: read-only
// commands run without it, and write commands enforce it themselves.
type Config struct {
	ProjectID  string `env:"CHOIR_SANITY_PROJECT_ID" envDefault:"5cnyv1t8"`
	Dataset    string `env:"CHOIR_SANITY_DATASET" envDefault:"production"`
	APIVersion string `env:"CHOIR_SANITY_API_VERSION" envDefault:"2023-05-03"`
	Token      string `env:"SANITY_TOKEN"`
	LogLevel   string `env:"CHOIR_LOG_LEVEL" envDefault:"info"`

	// Outbound HTTP behavior
	HTTPTimeout int     `env:"CHOIR_HTTP_TIMEOUT" envDefault:"30"` // seconds
	RateLimit   float64 `env:"CHOIR_RATE_LIMIT" envDefault:"10"`   // API requests per second

	// APIURL overrides the derived Sanity API base URL (proxies, tests).
	APIURL string `env:"CHOIR_SANITY_API_URL"`
}

// APIBaseURL returns the versioned Sanity API base URL for this project.
func (c Config) APIBaseURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}
	return fmt.Sprintf("https://%s.api.sanity.io/v%s", c.ProjectID, c.APIVersion)
}

// HasToken returns true if a write-access token is configured.
func (c Config) HasToken() bool {
	return c.Token != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("CHOIR_SANITY_PROJECT_ID must not be empty")
	}
	if cfg.Dataset == "" {
		return nil, fmt.Errorf("CHOIR_SANITY_DATASET must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("CHOIR_RATE_LIMIT must be positive, got %v", cfg.RateLimit)
	}

	return cfg, nil
}
