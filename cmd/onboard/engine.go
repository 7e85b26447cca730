package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/voice-onboarding/internal/config"
	"github.com/jonathan/voice-onboarding/internal/onboarding"
)

// loadConfig merges the config file, environment and command-line flags.
// Flags win over the environment, which wins over the file.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}

	if rootCatalogs != "" {
		cfg.CatalogPaths = splitList(rootCatalogs)
	}
	if rootLocale != "" {
		cfg.DefaultLocale = rootLocale
	}
	if rootVerbose {
		cfg.Verbose = true
	}

	cfg = cfg.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadEngine builds the onboarding engine from the merged configuration.
func loadEngine() (*onboarding.Engine, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}

	engine, err := onboarding.New(onboarding.Options{CatalogPaths: cfg.CatalogPaths})
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to load reference data: %w", err)
	}
	return engine, cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, _ = fmt.Fprintln(w, string(data))
	return nil
}
