package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"", zapcore.WarnLevel},
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" error ", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewLoggerTo_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLoggerTo(&buf, "warn", false)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerTo_VerboseForcesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLoggerTo(&buf, "error", true)
	require.NoError(t, err)

	logger.Debug("details")
	assert.Contains(t, buf.String(), "details")
}

func TestWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLoggerTo(&buf, "info", false)
	require.NoError(t, err)

	tagged, runID := WithRunID(logger)
	tagged.Info("started")

	assert.Len(t, runID, 36)
	assert.Contains(t, buf.String(), runID)
	assert.Contains(t, buf.String(), "run_id")
}

func TestNewLoggerTo_InvalidLevel(t *testing.T) {
	_, err := NewLoggerTo(&bytes.Buffer{}, "loud", false)
	assert.Error(t, err)
}
