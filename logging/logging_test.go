package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "log.json")
	logger, err := NewLogger(Config{
		Level:      "debug",
		Format:     "json",
		OutputPath: logPath,
		Fields:     map[string]string{"component": "test"},
	})
	require.NoError(t, err)

	logger.Debug("generated rows")
	_ = logger.Sync()

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "generated rows", entry["msg"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "log.json")
	logger, err := NewLogger(Config{Level: "loud", OutputPath: logPath})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hidden")
	assert.Contains(t, string(raw), "shown")
}

func TestNewDefaultLogger(t *testing.T) {
	assert.NotNil(t, NewDefaultLogger("cellSynth"))
}
