package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "production", slog.LevelInfo)

	log.Info("patch applied", "patch", "catalog/data/add_new_product")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "patch applied", line["msg"])
	assert.Equal(t, "catalog/data/add_new_product", line["patch"])
}

func TestNew_LocalRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "local", slog.LevelWarn)

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithCtx(t *testing.T) {
	assert.Same(t, L, WithCtx(context.Background()))

	var buf bytes.Buffer
	tagged := New(&buf, "local", slog.LevelInfo).With("patch", "p1")
	ctx := InjectLogger(context.Background(), tagged)

	WithCtx(ctx).Info("running")
	assert.Contains(t, buf.String(), "patch=p1")
}
