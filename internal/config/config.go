// Package config loads the application configuration from a YAML file and
// fills in defaults for anything left unset.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings for the HTTP server and the address
// lookup client.
type Config struct {
	Listen   string `yaml:"listen"`
	LogLevel string `yaml:"log_level"`
	Lookup   Lookup `yaml:"lookup"`
}

// Lookup configures the external address search service.
type Lookup struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		Listen:   ":8080",
		LogLevel: "info",
		Lookup: Lookup{
			BaseURL:   "https://nominatim.openstreetmap.org/search",
			UserAgent: "BolzEntsorgungApp/1.0",
		},
	}
}

// Load reads a YAML configuration file and merges it over the defaults. An
// empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if strings.TrimSpace(cfg.Listen) == "" {
		cfg.Listen = Default().Listen
	}
	if strings.TrimSpace(cfg.Lookup.BaseURL) == "" {
		cfg.Lookup.BaseURL = Default().Lookup.BaseURL
	}
	if strings.TrimSpace(cfg.Lookup.UserAgent) == "" {
		cfg.Lookup.UserAgent = Default().Lookup.UserAgent
	}
	return cfg, nil
}
