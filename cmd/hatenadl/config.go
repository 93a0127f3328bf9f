package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig represents the structure of the optional config file. File
// values provide defaults; command-line flags win.
type FileConfig struct {
	Dest        string  `yaml:"dest"`
	Archive     string  `yaml:"archive"`
	Rate        float64 `yaml:"rate"`
	Concurrency int     `yaml:"concurrency"`
	UserAgent   string  `yaml:"user_agent"`
}

// DefaultConfigPath returns the default config file location,
// ~/.config/hatenadl/config.yaml.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "hatenadl", "config.yaml")
}

// LoadConfigFile loads configuration from the given path. Returns nil
// if the file doesn't exist (not an error). Returns an error if the
// file exists but cannot be parsed.
func LoadConfigFile(path string) (*FileConfig, error) {
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil // File doesn't exist -- not an error
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
