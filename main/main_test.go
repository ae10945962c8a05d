package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerConfig(t *testing.T) {
	cfg, err := loggerConfig("error")
	require.NoError(t, err)

	assert.True(t, cfg.DisableStacktrace)
	assert.Equal(t, zapcore.ErrorLevel, cfg.Level.Level())
	assert.Equal(t, "console", cfg.Encoding)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
}

func TestLoggerConfigInvalidLevel(t *testing.T) {
	_, err := loggerConfig("loud")
	require.Error(t, err)
}
