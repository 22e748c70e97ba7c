// Package config loads the optional plates.yaml interpreter configuration.
//
// The file carries host policy only (limits, seeding, presentation); it
// never changes language semantics. Command-line flags take precedence over
// file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "plates.yaml"

// Config represents the plates.yaml configuration.
type Config struct {
	// MaxDepth is the frame-stack ceiling (0 = interpreter default).
	MaxDepth int `yaml:"max_depth,omitempty"`

	// MaxSteps caps executed instructions (0 = unlimited).
	MaxSteps int `yaml:"max_steps,omitempty"`

	// Seed seeds the PUSH * random source (0 = time-seeded).
	Seed int64 `yaml:"seed,omitempty"`

	// Debug echoes the stack after each executed chunk.
	Debug bool `yaml:"debug,omitempty"`

	// NoColor disables colored output.
	NoColor bool `yaml:"no_color,omitempty"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// LoadDefault loads plates.yaml from the working directory if present,
// returning a zero config otherwise.
func LoadDefault() (*Config, error) {
	if _, err := os.Stat(DefaultFile); err != nil {
		return &Config{}, nil
	}

	return Load(DefaultFile)
}

func (c *Config) validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}

	return nil
}
