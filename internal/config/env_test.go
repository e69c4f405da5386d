package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("REMOTE_BASE_URL", "https://sync.example.com")
	t.Setenv("REMOTE_TOKEN", "secret")
	t.Setenv("REMOTE_REQUEST_TIMEOUT", "15s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "packsync.db")
	t.Setenv("SYNC_INTERVAL", "30s")
	t.Setenv("SYNC_USER_ID", "user-1")
	t.Setenv("SYNC_STRATEGY", "prefer-local")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://sync.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, "secret", cfg.Remote.Token)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "packsync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Sync.Interval)
	assert.Equal(t, "user-1", cfg.Sync.UserID)
	assert.Equal(t, "prefer-local", cfg.Sync.Strategy)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Remote.BaseURL)
	assert.Zero(t, cfg.Sync.Interval)
}
