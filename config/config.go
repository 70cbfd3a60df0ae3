// Package config loads research agent settings from YAML files and the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all research agent configuration.
type Config struct {
	APIKey           string `yaml:"api_key"`
	Model            string `yaml:"model"`
	MaxSearchResults int    `yaml:"max_search_results"`
	MaxDepth         int    `yaml:"max_depth"`
	TimeoutSecs      int    `yaml:"timeout_secs"`
	CacheEnabled     bool   `yaml:"cache_enabled"`
	CacheTTLSecs     int    `yaml:"cache_ttl_secs"`
}

// Default returns a Config with all defaults applied and no API key.
func Default() *Config {
	return &Config{
		Model:            "claude-3-5-sonnet-20241022",
		MaxSearchResults: 10,
		MaxDepth:         3,
		TimeoutSecs:      30,
		CacheEnabled:     true,
		CacheTTLSecs:     3600,
	}
}

// Load reads configuration from a YAML file, applies environment
// overrides on top, and validates the result. Keys absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	applyEnvironmentOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// FromEnv builds a Config from environment variables alone. The API key
// (ANTHROPIC_API_KEY) is required; everything else has a default.
func FromEnv() (*Config, error) {
	cfg := Default()
	applyEnvironmentOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfigPath returns the config file path from the environment, or ""
// when none is set.
func GetConfigPath() string {
	return os.Getenv("RESEARCH_CONFIG")
}

func applyEnvironmentOverrides(cfg *Config) {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if model := os.Getenv("RESEARCH_MODEL"); model != "" {
		cfg.Model = model
	}
	if v := os.Getenv("MAX_SEARCH_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxSearchResults = n
		}
	}
	if v := os.Getenv("MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxDepth = n
		}
	}
	if v := os.Getenv("TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSecs = n
		}
	}
	if v := os.Getenv("CACHE_ENABLED"); v != "" {
		cfg.CacheEnabled = strings.ToLower(v) == "true"
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CacheTTLSecs = n
		}
	}
}

func validate(cfg *Config) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("api_key is required (set ANTHROPIC_API_KEY)")
	}
	if cfg.MaxSearchResults <= 0 {
		return fmt.Errorf("max_search_results must be positive, got %d", cfg.MaxSearchResults)
	}
	if cfg.TimeoutSecs <= 0 {
		return fmt.Errorf("timeout_secs must be positive, got %d", cfg.TimeoutSecs)
	}
	if cfg.CacheTTLSecs < 0 {
		return fmt.Errorf("cache_ttl_secs must not be negative, got %d", cfg.CacheTTLSecs)
	}
	return nil
}
