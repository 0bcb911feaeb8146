package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver resolves the provision manifest from multiple sources.
// Priority order (highest to lowest):
// 1. CLI flag (--config)
// 2. Environment variable (SPHERO_PROVISION_CONFIG)
// 3. Local file in the invocation directory (sphero.yaml, sphero.yml)
// 4. Built-in defaults (a missing manifest is not an error)
type Resolver struct {
	// CLIConfigPath is set via the --config flag
	CLIConfigPath string
}

// manifestFileNames are the filenames to look for, in order of preference
var manifestFileNames = []string{
	"sphero.yaml",
	"sphero.yml",
	"provision.yaml",
}

// NewResolver creates a resolver with the CLI-provided path
func NewResolver(cliConfigPath string) *Resolver {
	return &Resolver{CLIConfigPath: cliConfigPath}
}

// Resolve loads the effective manifest and reports where it came from.
// When no manifest exists anywhere, the built-in defaults are returned
// with an empty source path.
func (r *Resolver) Resolve() (cfg *ProvisionConfig, source string, err error) {
	// 1. CLI flag has highest priority and must exist when given
	if r.CLIConfigPath != "" {
		absPath, err := filepath.Abs(r.CLIConfigPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve config path: %w", err)
		}
		if _, err := os.Stat(absPath); err != nil {
			return nil, "", fmt.Errorf("config file not found: %s", absPath)
		}
		cfg, err := Load(absPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, absPath, nil
	}

	// 2. Environment variable, must exist when set
	if envPath := os.Getenv(EnvConfigFile); envPath != "" {
		absPath, err := filepath.Abs(envPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve %s path: %w", EnvConfigFile, err)
		}
		if _, err := os.Stat(absPath); err != nil {
			return nil, "", fmt.Errorf("config file from %s not found: %s", EnvConfigFile, absPath)
		}
		cfg, err := Load(absPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, absPath, nil
	}

	// 3. Invocation directory
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}
	for _, name := range manifestFileNames {
		candidate := filepath.Join(cwd, name)
		if _, err := os.Stat(candidate); err == nil {
			cfg, err := Load(candidate)
			if err != nil {
				return nil, "", err
			}
			return cfg, candidate, nil
		}
	}

	// 4. Defaults
	return Default(), "", nil
}
