package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a provision manifest from the given path and applies defaults
func Load(path string) (*ProvisionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ProvisionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}
