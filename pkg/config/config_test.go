package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "SERVER_READ_TIMEOUT", "DB_ENABLED", "DB_NAME",
		"CATALOG_FILE", "RELATED_LIMIT", "RELATED_MAX_LIMIT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "calc_catalog", cfg.Database.DBName)
	assert.Empty(t, cfg.Catalog.File)
	assert.Equal(t, 4, cfg.Catalog.RelatedLimit)
	assert.Equal(t, 12, cfg.Catalog.RelatedMaxLimit)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_WRITE_TIMEOUT", "5")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("CATALOG_FILE", "/etc/tools.yaml")
	t.Setenv("RELATED_LIMIT", "6")
	t.Setenv("RELATED_MAX_LIMIT", "20")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.WriteTimeout)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "/etc/tools.yaml", cfg.Catalog.File)
	assert.Equal(t, 6, cfg.Catalog.RelatedLimit)
	assert.Equal(t, 20, cfg.Catalog.RelatedMaxLimit)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	t.Setenv("RELATED_LIMIT", "many")
	t.Setenv("RELATED_MAX_LIMIT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 4, cfg.Catalog.RelatedLimit)
}

func TestLoadRejectsBadLimits(t *testing.T) {
	t.Run("non-positive limit", func(t *testing.T) {
		t.Setenv("RELATED_LIMIT", "0")
		t.Setenv("RELATED_MAX_LIMIT", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("max below default", func(t *testing.T) {
		t.Setenv("RELATED_LIMIT", "8")
		t.Setenv("RELATED_MAX_LIMIT", "4")
		_, err := Load()
		assert.Error(t, err)
	})
}
