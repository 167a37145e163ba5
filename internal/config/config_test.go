package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "/tmp/files_manager", cfg.FolderPath)
	assert.Equal(t, "postgres://localhost:5432/files_manager?sslmode=disable", cfg.DatabaseDSN)
	assert.Equal(t, "24h0m0s", cfg.SessionTTL.String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DSN", "file.db")
	t.Setenv("SESSION_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file.db", cfg.DatabaseDSN)
	assert.Equal(t, "1h0m0s", cfg.SessionTTL.String())
}

func TestLoad_ComposedDSNWithCredentials(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_DATABASE", "fm")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://svc:pw@db.internal:5433/fm?sslmode=disable", cfg.DatabaseDSN)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "sometimes")

	_, err := Load()
	assert.Error(t, err)
}
