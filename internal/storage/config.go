package storage

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/m3rciful/furnibot/core/config"
	coredatabase "github.com/m3rciful/furnibot/core/database"
)

// ServerConfig holds the HTTP listener settings of the catalog service.
type ServerConfig struct {
	Listen string `yaml:"listen" envconfig:"CATALOGD_LISTEN"`
}

// Config is the catalog service configuration.
type Config struct {
	Logging  coreconfig.LoggingConfig `yaml:"logging"`
	Database coredatabase.Config      `yaml:"database"`
	Server   ServerConfig             `yaml:"server"`
}

// LoadConfig reads catalogd configuration from a YAML file with
// environment overrides.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("database.host is required")
	}
	return &cfg, nil
}
