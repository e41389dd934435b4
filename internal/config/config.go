// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

// Package config loads and validates Tastewarp configuration using Koanf v2
// with layered sources: built-in defaults, an optional YAML config file, and
// environment variables (highest priority).
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Tastewarp server.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
	Storage StorageConfig `koanf:"storage"`
	Qloo    QlooConfig    `koanf:"qloo"`
	OpenAI  OpenAIConfig  `koanf:"openai"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// StorageConfig holds BadgerDB settings for the warp store.
type StorageConfig struct {
	// Path is the BadgerDB directory. Ignored when InMemory is true.
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

// QlooConfig holds settings for the Qloo cultural-affinity API.
type QlooConfig struct {
	BaseURL string `koanf:"base_url"`
	// APIKey is sent as the X-Api-Key header. Never logged verbatim.
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

// Configured reports whether a Qloo API key is present.
func (c *QlooConfig) Configured() bool {
	return c.APIKey != ""
}

// OpenAIConfig holds settings for the essay completion API.
// An empty APIKey disables live essay generation; the decade fallback
// essays are used instead.
type OpenAIConfig struct {
	BaseURL     string        `koanf:"base_url"`
	APIKey      string        `koanf:"api_key"`
	Model       string        `koanf:"model"`
	MaxTokens   int           `koanf:"max_tokens"`
	Temperature float64       `koanf:"temperature"`
	Timeout     time.Duration `koanf:"timeout"`
}

// Configured reports whether an OpenAI API key is present.
func (c *OpenAIConfig) Configured() bool {
	return c.APIKey != ""
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            1925, // a nod to the supported year range (1900-2025)
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Storage: StorageConfig{
			Path:     "/data/tastewarp",
			InMemory: false,
		},
		Qloo: QlooConfig{
			BaseURL: "https://hackathon.api.qloo.com",
			APIKey:  "",
			Timeout: 15 * time.Second,
		},
		OpenAI: OpenAIConfig{
			BaseURL:     "https://api.openai.com/v1",
			APIKey:      "",
			Model:       "gpt-3.5-turbo",
			MaxTokens:   100,
			Temperature: 0.7,
			Timeout:     30 * time.Second,
		},
	}
}

// Validate checks the configuration for values that would prevent startup.
// Missing upstream API keys are not errors: the service degrades to static
// fallbacks by design.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1,65535], got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.RateLimitReqs < 1 {
		return fmt.Errorf("server.rate_limit_reqs must be at least 1, got %d", c.Server.RateLimitReqs)
	}
	if !c.Storage.InMemory && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required unless storage.in_memory is set")
	}
	if c.Qloo.BaseURL == "" {
		return fmt.Errorf("qloo.base_url must not be empty")
	}
	if c.OpenAI.BaseURL == "" {
		return fmt.Errorf("openai.base_url must not be empty")
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("openai.temperature must be in [0,2], got %v", c.OpenAI.Temperature)
	}
	return nil
}
