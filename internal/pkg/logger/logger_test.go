package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReleaseWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(ModeRelease, &buf)

	log.Info("question created", slog.Int("id", 24))

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "question created", record["msg"])
	assert.Equal(t, float64(24), record["id"])
}

func TestNew_ReleaseSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(ModeRelease, &buf)

	log.Debug("quiz exhausted")

	assert.Empty(t, buf.String())
}

func TestPrettyHandler_WritesAttrs(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, slog.LevelDebug)).With(slog.String("request_id", "abc"))

	log.WithGroup("quiz").Debug("quiz exhausted", slog.Int("previous", 3))

	out := buf.String()
	assert.Contains(t, out, "DEBUG:")
	assert.Contains(t, out, "quiz exhausted")
	assert.Contains(t, out, "request_id=abc")
	assert.Contains(t, out, "quiz.previous=3")
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := NewPrettyHandler(&bytes.Buffer{}, slog.LevelWarn)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
