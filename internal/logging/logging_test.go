package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, slog.LevelInfo, Level(false))
	assert.Equal(t, slog.LevelDebug, Level(true))

	t.Setenv("LOG_LEVEL", "WARN")
	assert.Equal(t, slog.LevelWarn, Level(false))
}

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("analyzed", slog.Int("words", 3))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "words=3")
}

func TestNewFileLogger(t *testing.T) {
	dir := t.TempDir()
	logger, closer := NewFileLogger(dir, slog.LevelInfo)
	logger.Info("file saved", slog.String("path", "a.txt"))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &rec))
	assert.Equal(t, "file saved", rec["msg"])
	assert.Equal(t, "a.txt", rec["path"])
}

func TestNewFileLoggerFallsBackToDiscard(t *testing.T) {
	logger, closer := NewFileLogger(filepath.Join(t.TempDir(), "missing"), slog.LevelInfo)
	logger.Info("dropped")
	assert.NoError(t, closer.Close())
}
