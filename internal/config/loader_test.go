package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vareth-ml/xgbtree/internal/config"
)

func TestLoadConfig_DefaultsWithNoFile(t *testing.T) {
	t.Setenv("XGBTREE_LOG_LEVEL", "")
	t.Setenv("XGBTREE_STRICT", "")

	cfg, err := config.LoadConfig("/nonexistent/path/that/does/not/exist.yaml")
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("XGBTREE_LOG_LEVEL", "debug")
	t.Setenv("XGBTREE_STRICT", "true")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
	assert.Equal(t, config.DefaultCheckpointDir, cfg.Checkpoint.Dir)
}

func TestConfig_ValidateRejectsBadLogLevel(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{LogLevel: "verbose"}
	assert.Error(t, cfg.Validate())
}

func TestConfig_ValidateRejectsOutOfRangeSampleRatio(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		LogLevel:      "info",
		Observability: config.ObservabilityConfig{TraceSampleRatio: 1.5},
	}
	assert.Error(t, cfg.Validate())
}
