// Package config reads environment defaults for the advent command.
package config

import (
	"fmt"
	"runtime"

	"github.com/caarlos0/env/v11"
)

// Config holds settings that flags may override.
type Config struct {
	InputDir string `env:"ADVENT_INPUT_DIR" envDefault:"inputs"`
	Color    string `env:"ADVENT_COLOR" envDefault:"auto"`
	Workers  int    `env:"ADVENT_WORKERS"`
	Strategy string `env:"ADVENT_STRATEGY" envDefault:"breakpoints"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return Config{}, fmt.Errorf("ADVENT_COLOR must be auto, always or never, got %q", cfg.Color)
	}
	return cfg, nil
}
