// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/tastewarp/config.yaml",
	"/etc/tastewarp/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load loads configuration with layered sources (highest priority wins):
//  1. Environment variables
//  2. Config file (config.yaml)
//  3. Built-in defaults
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// QLOO_API_KEY -> qloo.api_key, PORT -> server.port, etc.
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the first file found, or empty string if none exists.
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

// envTransformFunc maps environment variable names to koanf config paths.
// Unknown variables are dropped so unrelated environment noise never lands
// in the config tree.
func envTransformFunc(key string) string {
	mappings := map[string]string{
		"HOST":              "server.host",
		"PORT":              "server.port",
		"SERVER_TIMEOUT":    "server.timeout",
		"SHUTDOWN_TIMEOUT":  "server.shutdown_timeout",
		"RATE_LIMIT_REQS":   "server.rate_limit_reqs",
		"RATE_LIMIT_WINDOW": "server.rate_limit_window",

		"LOG_LEVEL":  "logging.level",
		"LOG_FORMAT": "logging.format",
		"LOG_CALLER": "logging.caller",

		"DATA_DIR":          "storage.path",
		"STORAGE_IN_MEMORY": "storage.in_memory",

		"QLOO_BASE_URL": "qloo.base_url",
		"QLOO_API_KEY":  "qloo.api_key",
		"QLOO_TIMEOUT":  "qloo.timeout",

		"OPENAI_BASE_URL":    "openai.base_url",
		"OPENAI_API_KEY":     "openai.api_key",
		"OPENAI_MODEL":       "openai.model",
		"OPENAI_MAX_TOKENS":  "openai.max_tokens",
		"OPENAI_TEMPERATURE": "openai.temperature",
		"OPENAI_TIMEOUT":     "openai.timeout",
	}

	if path, ok := mappings[strings.ToUpper(key)]; ok {
		return path
	}
	return ""
}
