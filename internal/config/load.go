package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the scenario configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	cfg.dir = filepath.Dir(abs)

	// Set defaults
	if cfg.Scenario.Name == "" {
		cfg.Scenario.Name = DefaultScenarioName
	}
	if cfg.Driver.Name == "" {
		cfg.Driver.Name = DefaultDriverName
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Locate resolves the scenario file path. An empty path means the default
// file name in the current working directory.
func Locate(path string) (string, error) {
	if path == "" {
		path = DefaultFileName
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("scenario file %s not found: %w", path, err)
	}
	return path, nil
}
