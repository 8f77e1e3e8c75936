package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ardubusctl config.yaml keys.
type fileConfig struct {
	Port        string `yaml:"port"`
	Baud        int    `yaml:"baud"`
	FrequencyHz int    `yaml:"frequency_hz"`
	ReadDelayMs int    `yaml:"read_delay_ms"`
	Verbose     bool   `yaml:"verbose"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Baud: 115200,
	}
}

// defaultConfigPath is ~/.ardubridge/config.yaml.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ardubridge", "config.yaml")
}

// loadConfig reads a YAML config over the defaults. A missing file at the
// default path is fine; a missing file named explicitly is an error.
func loadConfig(path string, explicit bool) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("load config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
