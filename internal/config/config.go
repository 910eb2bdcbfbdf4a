// SPDX-License-Identifier: MIT

// Package config loads numkit settings from NUMKIT_* environment variables.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/numkit/quadrature"
)

// Prefix is prepended to every variable name, e.g. NUMKIT_LOG_LEVEL.
const Prefix = "NUMKIT"

// Output formats understood by the CLI.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// Config holds all CLI configuration. Fields are flat so that every variable
// carries the NUMKIT_ prefix.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`

	DefaultRule  string `envconfig:"DEFAULT_RULE" default:"simpson" validate:"rule"`
	DefaultSteps int    `envconfig:"DEFAULT_STEPS" default:"100" validate:"gte=1"`

	// MaxDetOrder caps the order accepted by "matrix det" without --lu.
	MaxDetOrder int `envconfig:"MAX_DET_ORDER" default:"10" validate:"gte=1,lte=12"`

	Output string `envconfig:"OUTPUT" default:"table" validate:"oneof=table yaml"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("rule", func(fl validator.FieldLevel) bool {
		_, err := quadrature.ParseRule(fl.Field().String())
		return err == nil
	})

	return v
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		LogLevel:     "warn",
		LogDev:       false,
		DefaultRule:  "simpson",
		DefaultSteps: 100,
		MaxDetOrder:  10,
		Output:       OutputTable,
	}
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Rule returns the parsed default quadrature rule.
func (c *Config) Rule() (quadrature.Rule, error) {
	return quadrature.ParseRule(c.DefaultRule)
}
