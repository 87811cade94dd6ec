package rancher

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET", "url": "https://rancher/hosts"})
	logger.Warn("Workflow step failed", map[string]interface{}{"step": "read token"})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "DEBUG", first["level"])
	assert.Equal(t, "HTTP Request", first["msg"])
	assert.Equal(t, "GET", first["method"])

	var second map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "WARN", second["level"])
	assert.Equal(t, "read token", second["step"])
}

func TestSlogLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer

	logger := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError})))

	logger.Info("ignored", nil)
	logger.Error("kept", map[string]interface{}{"status_code": 500})

	assert.NotContains(t, buf.String(), "ignored")
	assert.Contains(t, buf.String(), "status_code=500")
}

func TestNewSlogLogger_Default(t *testing.T) {
	assert.NotNil(t, NewSlogLogger(nil))
}
