// Package config provides configuration loading and validation for the onboard CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/voice-onboarding/internal/types"
)

// Environment variables that override file values.
const (
	EnvPort          = "PORT"
	EnvDefaultLocale = "ONBOARD_DEFAULT_LOCALE"
	EnvCatalogFile   = "ONBOARD_CATALOG_FILE"
	EnvAllowedOrigin = "ONBOARD_ALLOWED_ORIGIN"
)

// Config represents the onboard configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Port          int      `json:"port,omitempty" yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	DefaultLocale string   `json:"default_locale,omitempty" yaml:"default_locale,omitempty"` // Used when a request omits its locale
	CatalogPaths  []string `json:"catalog_paths,omitempty" yaml:"catalog_paths,omitempty" validate:"dive,required"`
	AllowedOrigin string   `json:"allowed_origin,omitempty" yaml:"allowed_origin,omitempty"` // CORS Access-Control-Allow-Origin
	Verbose       bool     `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:          8080,
		DefaultLocale: string(types.LocaleEnglish),
		AllowedOrigin: "*",
	}
}

// LoadConfig loads configuration from a file. Files ending in .yaml or .yml
// are parsed as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	// Relative catalog paths are resolved against the config file's directory.
	dir := filepath.Dir(path)
	for i, p := range cfg.CatalogPaths {
		if p != "" && !filepath.IsAbs(p) {
			cfg.CatalogPaths[i] = filepath.Join(dir, p)
		}
	}

	return &cfg, nil
}

// ApplyEnv overrides values with any environment variables that are set.
// ONBOARD_CATALOG_FILE holds one path or a comma-separated list.
func (c *Config) ApplyEnv() error {
	if value := os.Getenv(EnvPort); value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config error: invalid %s %q: %w", EnvPort, value, err)
		}
		c.Port = port
	}
	if value := os.Getenv(EnvDefaultLocale); value != "" {
		c.DefaultLocale = value
	}
	if value := os.Getenv(EnvCatalogFile); value != "" {
		var paths []string
		for _, p := range strings.Split(value, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		c.CatalogPaths = paths
	}
	if value := os.Getenv(EnvAllowedOrigin); value != "" {
		c.AllowedOrigin = value
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.DefaultLocale != "" {
		if _, err := types.ParseLocale(c.DefaultLocale); err != nil {
			return fmt.Errorf("config error: 'default_locale': %w", err)
		}
	}

	for _, p := range c.CatalogPaths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", p)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DefaultLocale == "" {
		result.DefaultLocale = defaults.DefaultLocale
	}
	if len(result.CatalogPaths) == 0 {
		result.CatalogPaths = append([]string(nil), defaults.CatalogPaths...)
	}
	if result.AllowedOrigin == "" {
		result.AllowedOrigin = defaults.AllowedOrigin
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
