package logger

import (
	"bytes"
	"context"
	"log/slog"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Debug: true, JSON: true, Writer: &buf})
	l.Debug("task.done", "id", "abc")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "task.done", rec["msg"])
	assert.Equal(t, "abc", rec["id"])
	assert.Contains(t, rec, "source")
	assert.Contains(t, rec["time"], "Z", "time must be UTC")
}

func TestNew_TextInfoFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf})
	l.Debug("hidden")
	l.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError), "discard logger must skip every level")
	assert.NotPanics(t, func() { l.Error("nothing", "k", 1) })
}
