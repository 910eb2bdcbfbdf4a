// SPDX-License-Identifier: MIT
package config_test

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/internal/config"
	"github.com/katalvlaran/numkit/quadrature"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	r, err := cfg.Rule()
	require.NoError(t, err)
	assert.Equal(t, quadrature.RuleSimpson, r)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("NUMKIT_LOG_LEVEL", "debug")
	t.Setenv("NUMKIT_LOG_DEV", "true")
	t.Setenv("NUMKIT_DEFAULT_RULE", "Gauss")
	t.Setenv("NUMKIT_DEFAULT_STEPS", "3")
	t.Setenv("NUMKIT_MAX_DET_ORDER", "5")
	t.Setenv("NUMKIT_OUTPUT", "yaml")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogDev)
	assert.Equal(t, 3, cfg.DefaultSteps)
	assert.Equal(t, 5, cfg.MaxDetOrder)
	assert.Equal(t, config.OutputYAML, cfg.Output)

	r, err := cfg.Rule()
	require.NoError(t, err)
	assert.Equal(t, quadrature.RuleGaussian, r)
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"NUMKIT_LOG_LEVEL":     "loud",
		"NUMKIT_DEFAULT_RULE":  "romberg",
		"NUMKIT_DEFAULT_STEPS": "0",
		"NUMKIT_MAX_DET_ORDER": "13",
		"NUMKIT_OUTPUT":        "xml",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := config.Load()
			require.Error(t, err)
			var verrs validator.ValidationErrors
			assert.True(t, errors.As(err, &verrs), "%v", err)
		})
	}
}

func TestLoad_ParseFailure(t *testing.T) {
	t.Setenv("NUMKIT_DEFAULT_STEPS", "many")
	_, err := config.Load()
	assert.ErrorContains(t, err, "failed to load config")
}
