package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		log, err := Setup(Config{Level: level})
		require.NoError(t, err)
		assert.NotNil(t, log)
	}

	// Unknown levels fall back to info rather than failing.
	log, err := Setup(Config{Level: "verbose"})
	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestContextCarriage(t *testing.T) {
	t.Parallel()

	attached := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithLogger(context.Background(), attached)
	assert.Same(t, attached, FromContext(ctx))
	assert.Same(t, attached, FromContextOrDefault(ctx, nil))

	// No logger attached: FromContext falls back to the default,
	// FromContextOrDefault prefers the provided fallback.
	bare := context.Background()
	assert.NotNil(t, FromContext(bare))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, fallback, FromContextOrDefault(bare, fallback))
}
