package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("SESSION_SECRET", "s3cret")
		t.Setenv("SESSION_TTL", "2h")
		t.Setenv("SESSION_STORE", "redis")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("LOG_LEVEL", "warn")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "s3cret", cfg.SessionSecret)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
		assert.Equal(t, "redis", cfg.SessionStore)
		assert.Equal(t, 3, cfg.RedisDB)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("SESSION_SECRET", "s3cret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "static", cfg.StaticDir)
		assert.Equal(t, "disable", cfg.DBSSLMode)
		assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
		assert.Equal(t, "session", cfg.SessionCookie)
		assert.Equal(t, "memory", cfg.SessionStore)
		assert.False(t, cfg.CookieSecure)
	})

	t.Run("Missing secret", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("SESSION_SECRET", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Unknown session store", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("SESSION_SECRET", "s3cret")
		t.Setenv("SESSION_STORE", "memcached")

		_, err := Load()
		assert.ErrorContains(t, err, "SESSION_STORE")
	})
}

func TestLoadDatabase(t *testing.T) {
	t.Run("Does Not Need Session Secret", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("SESSION_SECRET", "")

		cfg, err := LoadDatabase()
		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.DBHost)
		assert.Equal(t, "5432", cfg.DBPort)
	})

	t.Run("Missing Host", func(t *testing.T) {
		t.Setenv("DB_HOST", "")

		_, err := LoadDatabase()
		assert.Error(t, err)
	})
}
