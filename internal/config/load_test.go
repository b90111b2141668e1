package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Database URL has no default; without it validation must fail.
	_, err := Load()
	require.Error(t, err)

	t.Setenv("BLOG_DATABASE_URL", "postgres://localhost:5432/blog")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, []string{"/swagger-ui", "/v3/api-docs", "/health"}, cfg.Auth.BypassPrefixes)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BLOG_DATABASE_URL", "postgres://localhost:5432/blog")
	t.Setenv("BLOG_SERVER_PORT", "9090")
	t.Setenv("BLOG_SERVER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/blog", cfg.Database.URL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("BLOG_DATABASE_URL", "postgres://localhost:5432/blog")
	t.Setenv("BLOG_SERVER_LOG_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err, "log level outside the allowed set is rejected")
}
