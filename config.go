package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"textstat/analyzer"
)

// Config holds the tunable defaults of the CLI and servers.
type Config struct {
	TopN         int    `yaml:"topN"`
	OutputFormat string `yaml:"outputFormat"`
	HTTPAddress  string `yaml:"httpAddress"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		TopN:         analyzer.DefaultTopN,
		OutputFormat: "text",
		HTTPAddress:  ":8080",
	}
}

// LoadConfig reads a YAML config file and layers it over the defaults.
// An empty path or a missing file yields the defaults; a file that exists
// but cannot be parsed is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config file '%s' not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	if cfg.TopN <= 0 {
		cfg.TopN = analyzer.DefaultTopN
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}
	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = ":8080"
	}
	log.Printf("Loaded config from %s", path)
	return cfg, nil
}
