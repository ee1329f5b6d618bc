// Package config loads server configuration from an optional YAML file and
// the environment. Environment variables override file values, so the server
// runs with no config file at all (the original deployment mode).
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
type Config struct {
	// Env controls log format and verbosity: "dev" or "prod".
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// StoragePath is the filesystem path to the SQLite database file.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"inventory.db"`

	// HTTPAddr is the TCP address the server listens on.
	HTTPAddr string `yaml:"http_addr" env:"HTTP_ADDR" env-default:":8000"`

	// EnableDelay makes every endpoint block for 10 seconds before
	// responding. Only useful for testing client timeout handling.
	EnableDelay bool `yaml:"enable_delay" env:"ENABLE_DELAY" env-default:"false"`
}

// Load reads configuration from path (when non-empty) and the environment.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}
	return &cfg, nil
}
