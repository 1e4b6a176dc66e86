package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TASKLINE_DATABASE_URL", "postgres://localhost:5432/taskline_test")
	t.Setenv("TASKLINE_AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("TASKLINE_SERVER_PORT", "9090")
	t.Setenv("TASKLINE_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKLINE_NOTIFICATION_DEFAULT_CHANNEL", "webpush")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/taskline_test", cfg.Database.URL)
	assert.Equal(t, "webpush", cfg.Notification.DefaultChannel)

	// Defaults fill what the environment leaves out.
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 100, cfg.Notification.QueueSize)
	assert.Equal(t, 3, cfg.Notification.MaxAttempts)
}

func TestLoadRejectsMissingSecrets(t *testing.T) {
	t.Setenv("TASKLINE_DATABASE_URL", "postgres://localhost:5432/taskline_test")
	// No JWT secret set.

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsShortJWTSecret(t *testing.T) {
	t.Setenv("TASKLINE_DATABASE_URL", "postgres://localhost:5432/taskline_test")
	t.Setenv("TASKLINE_AUTH_JWT_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("TASKLINE_DATABASE_URL", "postgres://localhost:5432/taskline_test")
	t.Setenv("TASKLINE_AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("TASKLINE_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
}
