// Package config loads command configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Generator holds the settings shared by fakegen commands. Flags may
// override any of them.
type Generator struct {
	// Seed of 0 means seed from the current time.
	Seed       uint32        `env:"FAKEGEN_SEED" envDefault:"0"`
	MaxRetries int           `env:"FAKEGEN_MAX_RETRIES" envDefault:"20"`
	MaxTime    time.Duration `env:"FAKEGEN_MAX_TIME" envDefault:"10ms"`
	LogLevel   string        `env:"FAKEGEN_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadGenerator parses a Generator from the environment.
func LoadGenerator() (Generator, error) {
	var cfg Generator
	if err := ParseEnv(&cfg); err != nil {
		return Generator{}, err
	}
	return cfg, nil
}
