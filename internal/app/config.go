package app

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	corecmd "github.com/m3rciful/furnibot/core/cmd"
	coreconfig "github.com/m3rciful/furnibot/core/config"
	"github.com/m3rciful/furnibot/internal/catalog"
)

// Config is the bot configuration: the shared core sections plus the
// catalog service endpoint.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Catalog catalog.Config `yaml:"catalog"`
}

// CoreConfig implements cmd.ConfigCarrier.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// LoadConfig reads the bot configuration from a YAML file, applies
// environment overrides, and validates all sections.
func LoadConfig(path string) (corecmd.ConfigCarrier, error) {
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

	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if err := cfg.Catalog.Normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
