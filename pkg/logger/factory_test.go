package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uadetect/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "test", entry["svc"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("id", ctxKey))
		log.InfoContext(context.WithValue(context.Background(), ctxKey, "42"), "context msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "42", entry["id"])
	})
}

func TestEnvironmentPresets(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithDevelopment("uadetect"), logger.WithOutput(buf))
	log.Debug("msg")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "service=uadetect")

	buf.Reset()
	log = logger.New(logger.WithProduction("uadetect"), logger.WithOutput(buf))
	log.Info("msg")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "uadetect", entry["service"])
}

func TestParseFormat(t *testing.T) {
	f, err := logger.ParseFormat("TEXT")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	f, err = logger.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	_, err = logger.ParseFormat("xml")
	require.ErrorIs(t, err, logger.ErrInvalidFormat)
}

func TestParseLevel(t *testing.T) {
	l, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = logger.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)

	_, err = logger.ParseLevel("loud")
	require.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestContextValueSurvivesWith(t *testing.T) {
	type key struct{}
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", key{})).
		With(slog.String("component", "api")).
		WithGroup("req")

	log.InfoContext(context.WithValue(context.Background(), key{}, "abc"), "handled", slog.Int("status", 200))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "api", entry["component"])
	group, ok := entry["req"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "abc", group["request_id"])
	assert.InDelta(t, 200, group["status"], 0)
}
