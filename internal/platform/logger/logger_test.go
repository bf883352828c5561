package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, Config{Level: "info", Format: "json"}).Info("hello", "backend", "mongo")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["msg"])
		assert.Equal(t, "mongo", line["backend"])
	})

	t.Run("level filter", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, Config{Level: "warn"})
		l.Info("dropped")
		assert.Empty(t, buf.String())
		l.Warn("kept")
		assert.Contains(t, buf.String(), "msg=kept")
	})
}
