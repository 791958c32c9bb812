package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{" warning ", WarnLevel},
		{"error", ErrorLevel},
		{"", InfoLevel},
		{"verbose", InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, DebugLevel)

	log.Info("CaptureLoop", "started", map[string]interface{}{"source": 2})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "CaptureLoop", entry["component"])
	assert.Equal(t, "started", entry["message"])
	assert.EqualValues(t, 2, entry["source"])
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, InfoLevel)

	log.Error("Application", errors.New("camera gone"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "camera gone", entry["error"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, WarnLevel)

	log.Debug("Pipeline", "dropped", nil)
	log.Info("Pipeline", "dropped", nil)
	assert.Zero(t, buf.Len())

	log.Warning("Pipeline", "kept", nil)
	assert.NotZero(t, buf.Len())
}

func TestConsoleLoggerIsReadable(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, InfoLevel)

	log.Info("ModeTracker", "mode defaults applied", map[string]interface{}{"mode": "truncate"})

	out := buf.String()
	assert.Contains(t, out, "mode defaults applied")
	assert.Contains(t, out, "truncate")
	assert.NotContains(t, out, "{")
}
