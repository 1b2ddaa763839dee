package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerJSON(t *testing.T) {
	out, err := os.Create(filepath.Join(t.TempDir(), "log.json"))
	require.NoError(t, err)
	defer out.Close()

	logger, err := InitLogger(LoggerConfig{Format: "json", Level: "warn", Output: out})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")
	require.NoError(t, logger.Sync())

	raw, err := os.ReadFile(out.Name())
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "vedaverse", entry["logger"])
}

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := InitLogger(LoggerConfig{Level: "verbose"})
	assert.Error(t, err)
}
