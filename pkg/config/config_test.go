// nolint: funlen
package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviecatalog/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("loads config from environment variables", func(t *testing.T) {
		// Setup environment variables
		envVars := map[string]string{
			"APP_ENV":        "test",
			"PORT":           "9090",
			"SENTRY_DSN":     "https://test@sentry.io/123",
			"ALLOW_ORIGINS":  "*",
			"CATALOG_SOURCE": "postgres",
			"CATALOG_FILE":   "/tmp/movies.json",
			"DB_NAME":        "testdb",
			"DB_HOST":        "localhost",
			"DB_PORT":        "5432",
			"DB_USER":        "testuser",
			"DB_PASS":        "testpass",
			"ENABLE_SSL":     "true",
		}

		// Set environment variables
		for key, value := range envVars {
			t.Setenv(key, value)
		}

		// Load config
		cfg, err := config.LoadConfig()

		// Assertions
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "https://test@sentry.io/123", cfg.SentryDSN)
		assert.Equal(t, "*", cfg.AllowOrigins)
		assert.Equal(t, config.SourcePostgres, cfg.Catalog.Source)
		assert.Equal(t, "/tmp/movies.json", cfg.Catalog.File)
		assert.Equal(t, "testdb", cfg.DB.Name)
		assert.Equal(t, "localhost", cfg.DB.Host)
		assert.Equal(t, 5432, cfg.DB.Port)
		assert.Equal(t, "testuser", cfg.DB.User)
		assert.Equal(t, "testpass", cfg.DB.Pass)
		assert.True(t, cfg.DB.EnableSSL)
	})

	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, config.SourceFile, cfg.Catalog.Source)
		assert.Equal(t, "data/movies.json", cfg.Catalog.File)
	})

	t.Run("handles invalid port number", func(t *testing.T) {
		t.Setenv("PORT", "invalid")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})

	t.Run("handles invalid boolean value", func(t *testing.T) {
		t.Setenv("ENABLE_SSL", "not-a-boolean")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})

	t.Run("handles unknown catalog source", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "s3")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "unknown catalog source")
	})
}

func TestConfig_Origins(t *testing.T) {
	cfg := &config.Config{AllowOrigins: "https://a.example, https://b.example,,"}

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
	assert.Empty(t, config.Empty.Origins())
}
