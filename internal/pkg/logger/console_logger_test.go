//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/bella-carwash/bella-api/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, config.LogLevelInfo)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestConsoleLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, config.LogLevelDebug)

	logger.With("request_id", "req-42").Info("handled")

	assert.Contains(t, buf.String(), "request_id=req-42")
	assert.Contains(t, buf.String(), "handled")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}
