package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/devpost/blog-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "mixed case is accepted", logLevel: "DEBUG"},
		{name: "invalid level falls back to info", logLevel: "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	// Without a stored logger both accessors fall back.
	assert.Equal(t, slog.Default(), FromContext(ctx))

	custom := slog.Default().With(slog.String("trace_id", "abc"))
	ctx = WithLogger(ctx, custom)

	assert.Same(t, custom, FromContext(ctx))
	assert.Same(t, custom, FromContextOrDefault(ctx, nil))
}

func TestFromContextOrDefaultFallback(t *testing.T) {
	def := slog.Default().With(slog.String("component", "test"))

	assert.Same(t, def, FromContextOrDefault(context.Background(), def))
	assert.Equal(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
}
