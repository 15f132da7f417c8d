package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkeeper/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "test")),
		)
		log.Info("hello", logger.Component("session"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "test", rec["service"])
		assert.Equal(t, "session", rec["component"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("quiet")
		log.Warn("loud")

		assert.NotContains(t, buf.String(), "quiet")
		assert.Contains(t, buf.String(), "loud")
	})

	t.Run("level from string", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := logger.New(logger.WithOutput(&buf), logger.WithLevelString("error"))
		log.Warn("dropped")
		log.Error("kept")
		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")

		buf.Reset()
		log = logger.New(logger.WithOutput(&buf), logger.WithLevelString("nonsense"))
		log.Info("default level")
		assert.Contains(t, buf.String(), "default level")
	})

	t.Run("development preset logs debug as text", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := logger.New(logger.WithDevelopment("svc"), logger.WithOutput(&buf))
		log.Debug("details")

		out := buf.String()
		assert.Contains(t, out, "details")
		assert.Contains(t, out, "service=svc")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production preset logs json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := logger.New(logger.WithProduction("svc"), logger.WithOutput(&buf))
		log.Debug("hidden")
		log.Info("shown")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "shown", rec["msg"])
		assert.Equal(t, "production", rec["env"])
	})

	t.Run("handler options keep configured level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelError),
			logger.WithHandlerOptions(&slog.HandlerOptions{AddSource: false}),
		)
		log.Warn("dropped")
		assert.Empty(t, buf.String())
	})
}
