// Package config loads the riskstats CLI configuration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults
type Config struct {
	RiskFreeRate  float64 `yaml:"risk_free_rate"` // Annual risk-free rate used when --rf is not given
	RoundDecimals int     `yaml:"round_decimals"` // Decimals for printed values (0 prints full precision)
}

// Default returns the built-in defaults: a 3% risk-free rate and
// 4-decimal output.
func Default() Config {
	return Config{
		RiskFreeRate:  0.03,
		RoundDecimals: 4,
	}
}

// Load reads a yaml config file and overlays it on the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.RoundDecimals < 0 || c.RoundDecimals > 15 {
		return fmt.Errorf("round_decimals must be between 0 and 15, got %d", c.RoundDecimals)
	}
	return nil
}
