// SPDX-License-Identifier: MIT
package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/numkit/internal/logging"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log, err := logging.New(logging.DefaultConfig(), &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", zap.Int("n", 4))
	require.NoError(t, log.Sync())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), buf.String())
	assert.Equal(t, "warn", rec["level"])
	assert.Equal(t, "shown", rec["message"])
	assert.EqualValues(t, 4, rec["n"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_Development(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "debug", Development: true}, &buf)
	require.NoError(t, err)

	log.Debug("parsed", zap.String("rule", "simpson"))
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "parsed")
}

func TestNew_BadLevel(t *testing.T) {
	t.Parallel()
	_, err := logging.New(logging.Config{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
	assert.NotNil(t, logging.NewNop())
}
