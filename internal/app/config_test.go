package app

import (
	"bytes"
	"errors"
	"flag"
	"testing"
	"time"

	"webcam-tuner/internal/capture"
	"webcam-tuner/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestParseArgsSourceIndex(t *testing.T) {
	var out bytes.Buffer
	cfg, err := ParseArgs([]string{"2"}, env(nil), &out)

	require.NoError(t, err)
	assert.Equal(t, 2, cfg.SourceIndex)
	assert.Equal(t, UIHighGUI, cfg.UI)
	assert.Equal(t, time.Millisecond, cfg.PollTimeout)
	assert.True(t, cfg.Histogram)
	assert.Equal(t, logger.InfoLevel, cfg.LogLevel)
	assert.Empty(t, out.String())
}

func TestParseArgsUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing", nil},
		{"two sources", []string{"0", "1"}},
		{"not a number", []string{"cam"}},
		{"negative", []string{"--", "-1"}},
		{"unknown flag", []string{"-nope", "0"}},
		{"unknown ui", []string{"-ui", "qt", "0"}},
		{"zero poll", []string{"-poll", "0s", "0"}},
		{"negative width", []string{"-width", "-5", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := ParseArgs(tt.args, env(nil), &out)
			assert.ErrorIs(t, err, ErrUsage)
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}

func TestParseArgsFlagAfterIndex(t *testing.T) {
	var out bytes.Buffer
	_, err := ParseArgs([]string{"0", "-ui", "fyne"}, env(nil), &out)

	require.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), "flag -ui after the video source index")
	assert.Contains(t, out.String(), "Flags must come before the video source index.")
}

func TestParseArgsHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := ParseArgs([]string{"-h"}, env(nil), &out)

	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "-ui")
}

func TestParseArgsFlags(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"-ui", "fyne", "-poll", "30ms", "-histogram=false",
		"-width", "640", "-height", "480", "-fps", "15",
		"-log-level", "debug", "-log-json", "1",
	}, env(nil), &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, UIFyne, cfg.UI)
	assert.Equal(t, 30*time.Millisecond, cfg.PollTimeout)
	assert.False(t, cfg.Histogram)
	assert.Equal(t, capture.Settings{Width: 640, Height: 480, FPS: 15}, cfg.Capture)
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, 1, cfg.SourceIndex)
}

func TestLogLevelFromEnvironment(t *testing.T) {
	cfg, err := ParseArgs([]string{"0"}, env(map[string]string{"LOG_LEVEL": "warn"}), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logger.WarnLevel, cfg.LogLevel)

	cfg, err = ParseArgs([]string{"0"}, env(map[string]string{"DEBUG": "1"}), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel)

	cfg, err = ParseArgs([]string{"-log-level", "error", "0"}, env(map[string]string{"LOG_LEVEL": "debug"}), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logger.ErrorLevel, cfg.LogLevel)
}
