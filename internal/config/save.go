package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Save writes cfg to path as YAML. Only fields that are set are written.
// The file may hold state database credentials and is created 0600.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
