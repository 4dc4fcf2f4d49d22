package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactedAttribute(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.With("parameter_set", "ML-KEM-768").Debug(context.Background(), "encapsulated", Redacted("shared_secret"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "encapsulated", rec["msg"])
	assert.Equal(t, "ML-KEM-768", rec["parameter_set"])
	assert.Equal(t, Placeholder(), rec["shared_secret"])
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	ctx := context.Background()

	l.Debug(ctx, "debug-line")
	l.Info(ctx, "info-line")
	l.Warn(ctx, "warn-line")
	l.Error(ctx, "error-line")

	out := buf.String()
	assert.NotContains(t, out, "debug-line")
	assert.NotContains(t, out, "info-line")
	assert.Contains(t, out, "warn-line")
	assert.Contains(t, out, "error-line")
}

func TestNilUsesDefault(t *testing.T) {
	assert.NotNil(t, New(nil))
	// Discard must be safe to call at every level.
	d := Discard()
	d.Error(context.Background(), "dropped", "k", "v")
}
