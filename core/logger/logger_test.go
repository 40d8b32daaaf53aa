package logger_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"schema-merger/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   logger.Config
		debug bool
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, true},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, false},
		{"WarnDefaults", logger.Config{Level: "warn"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	_, err := logger.New(&logger.Config{Level: "loud"})
	assert.ErrorContains(t, err, "invalid log level")

	_, err = logger.New(&logger.Config{Level: "info", Format: "xml"})
	assert.EqualError(t, err, `invalid log format "xml"`)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merge.log")
	l, err := logger.New(&logger.Config{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("Script not applied")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"Script not applied"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "ray-1")
		logger.WithRayID(base, c).Info("with ray")
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("without ray")
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/plain", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "ray-1", entries[0].ContextMap()["ray_id"])
	assert.NotContains(t, entries[1].ContextMap(), "ray_id")
}
