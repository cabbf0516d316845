// Package config provides the configuration loader for grind.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/xiao-chen/dist-test/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the per-project configuration file.
const DefaultFilename = ".grind.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file plus an
// optional .env file. Process environment values always win over both.
type FileConfigLoader struct{}

// Load reads the configuration file at path and resolves every schema
// field. A .env file next to the config file is loaded first. Credentials
// resolve in order: process environment, .env file, YAML value.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	// godotenv never overrides variables already present in the
	// environment, which is exactly the precedence we need.
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's project config
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	cfg := &domain.Config{}
	for _, field := range Schema() {
		value := raw[field.Name]
		if field.Env != "" {
			if env := os.Getenv(field.Env); env != "" {
				value = env
			}
		}
		if value == "" {
			value = field.Default
		}

		if value == "" {
			if field.Required {
				return nil, &ConfigError{Field: field.Name, Reason: "required value missing"}
			}
			continue
		}
		if field.Validate != nil {
			if err := field.Validate(value); err != nil {
				return nil, &ConfigError{Field: field.Name, Reason: err.Error()}
			}
		}
		field.Assign(cfg, value)
	}

	return cfg, nil
}
