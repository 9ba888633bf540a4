package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "cleaned-dataset", cfg.CleanedDir)
	assert.Equal(t, "removed_100000_entries.txt", cfg.AuditLogFile)
	assert.Equal(t, 100000, cfg.ChunkSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Nil(t, cfg.Postgres)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/raw")
	t.Setenv("CLEANED_DIR", "/srv/clean")
	t.Setenv("AUDIT_LOG_FILE", "/srv/removed.txt")
	t.Setenv("CHUNK_SIZE", "500")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/srv/raw", cfg.DataDir)
	assert.Equal(t, "/srv/clean", cfg.CleanedDir)
	assert.Equal(t, "/srv/removed.txt", cfg.AuditLogFile)
	assert.Equal(t, 500, cfg.ChunkSize)
}

func TestLoadConfigInvalidChunkSizeFallsBack(t *testing.T) {
	t.Setenv("CHUNK_SIZE", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 100000, cfg.ChunkSize)
}

func TestLoadConfigRejectsNegativeChunkSize(t *testing.T) {
	t.Setenv("CHUNK_SIZE", "-1")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigPostgresIsOptional(t *testing.T) {
	t.Setenv("POSTGRES_USER", "auditor")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "audits")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "auditor", cfg.Postgres.User)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
}

func TestLoadConfigPostgresIncomplete(t *testing.T) {
	t.Setenv("POSTGRES_USER", "auditor")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestPostgresConnectionString(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "auditor",
		Password: "secret",
		Database: "audits",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=auditor password=secret dbname=audits sslmode=require",
		cfg.ConnectionString())
}
