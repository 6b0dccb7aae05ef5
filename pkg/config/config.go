// Package config holds runner configuration sourced from the environment.
// Flags parsed by the CLI override anything loaded here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/github/validate-inputs/pkg/constants"
	"github.com/github/validate-inputs/pkg/logger"
)

var configLog = logger.New("config:load")

// Config is the process-wide configuration for a validation run.
type Config struct {
	// RulesDir is the directory containing per-action rule documents.
	RulesDir string `env:"VALIDATE_INPUTS_RULES_DIR"`

	// Strict treats inputs with no applicable validator as errors instead of
	// passing them through.
	Strict bool `env:"VALIDATE_INPUTS_STRICT" envDefault:"false"`

	// FailFast stops validation at the first error instead of collecting all
	// errors for the run.
	FailFast bool `env:"VALIDATE_INPUTS_FAIL_FAST" envDefault:"false"`

	// Quiet suppresses non-error console output.
	Quiet bool `env:"VALIDATE_INPUTS_QUIET" envDefault:"false"`
}

// Load parses configuration from the environment and applies defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment configuration: %w", err)
	}
	if cfg.RulesDir == "" {
		cfg.RulesDir = constants.DefaultRulesDirName
	}
	configLog.Printf("Loaded config: rules_dir=%s, strict=%v, fail_fast=%v", cfg.RulesDir, cfg.Strict, cfg.FailFast)
	return cfg, nil
}
