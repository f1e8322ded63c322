package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
	assert.Equal(t, "hrms_lite", cfg.Database.Name)
	assert.Equal(t, 10*time.Second, cfg.Database.Timeout)
	assert.Equal(t, 8000, cfg.App.Port)
	assert.Empty(t, cfg.CORS.FrontendURL)
	assert.Equal(t, defaultOrigins, cfg.CORS.AllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://mongo:27017")
	t.Setenv("DATABASE_NAME", "hrms_test")
	t.Setenv("FRONTEND_URL", "https://hrms.example.com")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://mongo:27017", cfg.Database.URL)
	assert.Equal(t, "hrms_test", cfg.Database.Name)
	assert.Equal(t, 3*time.Second, cfg.Database.Timeout)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "https://hrms.example.com")
	assert.Len(t, cfg.CORS.AllowedOrigins, len(defaultOrigins)+1)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_SlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for in, want := range cases {
		cfg := &Config{App: AppConfig{LogLevel: in}}
		assert.Equal(t, want, cfg.SlogLevel(), in)
	}
}
