package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/sip-forecast/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input     string
		expected  zapcore.Level
		wantError bool
	}{
		{input: "debug", expected: zapcore.DebugLevel},
		{input: "", expected: zapcore.InfoLevel},
		{input: "INFO", expected: zapcore.InfoLevel},
		{input: "warning", expected: zapcore.WarnLevel},
		{input: "error", expected: zapcore.ErrorLevel},
		{input: "trace", wantError: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantError {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got, tt.input)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		conf      config.LoggingConfig
		override  string
		level     zapcore.Level
		wantError bool
	}{
		{
			name:  "defaults",
			conf:  config.LoggingConfig{},
			level: zapcore.InfoLevel,
		},
		{
			name:  "console debug",
			conf:  config.LoggingConfig{Level: "debug", Format: "console"},
			level: zapcore.DebugLevel,
		},
		{
			name:     "override wins",
			conf:     config.LoggingConfig{Level: "debug", Format: "json"},
			override: "error",
			level:    zapcore.ErrorLevel,
		},
		{
			name:      "bad level",
			conf:      config.LoggingConfig{Level: "loud"},
			wantError: true,
		},
		{
			name:      "bad override",
			conf:      config.LoggingConfig{Level: "info"},
			override:  "quiet",
			wantError: true,
		},
		{
			name:      "bad format",
			conf:      config.LoggingConfig{Format: "xml"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.conf, tt.override)
			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.level))
			if tt.level > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.level-1))
			}
		})
	}
}

func TestNewWritesToOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sip-forecast.log")

	logger, err := New(config.LoggingConfig{Level: "info", Format: "json", OutputFile: path}, "")
	require.NoError(t, err)

	logger.Info("projection complete", zap.String("op", "test"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "projection complete")
	assert.Contains(t, string(data), `"op":"test"`)
}

func TestNewUnwritableOutputFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	_, err := New(config.LoggingConfig{OutputFile: filepath.Join(blocker, "nested.log")}, "")
	assert.Error(t, err)
}
