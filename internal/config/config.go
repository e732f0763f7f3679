// =============================================================================
// Data Formatter - Configuration Module
// =============================================================================
//
// Two kinds of file are loaded here:
//
//   1. The application config (config.yaml): suggestion endpoint, output
//      directory, export naming pattern.
//   2. Mapping profiles (*.yaml): the serialized form of one session's
//      mapping store — column mappings, merge rules, and templates — used
//      by the CLI in place of the interactive selection a UI would offer.
//
// Both follow the same load pattern: read, unmarshal, apply defaults, then
// validate the struct with go-playground/validator.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the shared struct validator.
var validate = validator.New()

// Config holds the global application settings.
type Config struct {
	// SuggestEndpoint is the URL of the mapping suggestion service.
	// Empty disables the suggest command.
	SuggestEndpoint string `yaml:"suggest_endpoint" validate:"omitempty,url"`

	// OutputDir is where exported CSV files are written.
	// Default: "." (current directory).
	OutputDir string `yaml:"output_dir"`

	// OutputNamePattern names exported files. Supports {name}, {timestamp}
	// and {uuid} placeholders. Empty uses the fixed default file name.
	OutputNamePattern string `yaml:"output_name_pattern"`

	// HTTPTimeoutSeconds bounds the suggestion call.
	// Default: 30.
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the application config from a YAML file. A missing file is not
// an error when allowMissing is set; the defaults are returned instead.
func Load(path string, allowMissing bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && allowMissing {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.HTTPTimeoutSeconds == 0 {
		cfg.HTTPTimeoutSeconds = 30
	}
}
