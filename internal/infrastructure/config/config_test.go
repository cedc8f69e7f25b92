package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "pos-backoffice", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "backoffice.db", cfg.Database.SQLitePath)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
		assert.Equal(t, 10, cfg.Table.DefaultPageSize)
		assert.Equal(t, 100, cfg.Table.MaxPageSize)
		assert.Equal(t, 5, cfg.Table.MaxVisiblePages)
		assert.Equal(t, "en", cfg.Table.DefaultLanguage)
		assert.Equal(t, 30*time.Minute, cfg.Table.SessionTTL)
		assert.Equal(t, "memory", cfg.Table.SessionStore)
		assert.Equal(t, DefaultTenantID, cfg.Seed.TenantID)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
	})

	t.Run("loads values from environment variables with POS prefix", func(t *testing.T) {
		t.Setenv("POS_APP_NAME", "test-app")
		t.Setenv("POS_APP_PORT", "9000")
		t.Setenv("POS_DATABASE_DRIVER", "postgres")
		t.Setenv("POS_DATABASE_HOST", "testdb.local")
		t.Setenv("POS_DATABASE_PORT", "5433")
		t.Setenv("POS_DATABASE_PASSWORD", "testpass")
		t.Setenv("POS_TABLE_DEFAULT_PAGE_SIZE", "25")
		t.Setenv("POS_TABLE_SESSION_STORE", "redis")
		t.Setenv("POS_TABLE_SESSION_TTL", "5m")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, 25, cfg.Table.DefaultPageSize)
		assert.Equal(t, "redis", cfg.Table.SessionStore)
		assert.Equal(t, 5*time.Minute, cfg.Table.SessionTTL)
	})

	t.Run("rejects unknown database driver", func(t *testing.T) {
		t.Setenv("POS_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		t.Setenv("POS_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("POS_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("rejects max page size below default", func(t *testing.T) {
		t.Setenv("POS_TABLE_DEFAULT_PAGE_SIZE", "50")
		t.Setenv("POS_TABLE_MAX_PAGE_SIZE", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "table.max_page_size")
	})

	t.Run("rejects unknown session store", func(t *testing.T) {
		t.Setenv("POS_TABLE_SESSION_STORE", "memcached")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "table.session_store")
	})

	t.Run("rejects sampling ratio out of range", func(t *testing.T) {
		t.Setenv("POS_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})
}

func TestValidate_Production(t *testing.T) {
	base := func() *Config {
		cfg := &Config{App: AppConfig{Env: "production"}}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("postgres requires password", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = "postgres"
		cfg.Database.SSLMode = "require"
		assert.ErrorContains(t, cfg.validate(), "database.password")

		cfg.Database.Password = "secret"
		assert.NoError(t, cfg.validate())
	})

	t.Run("postgres requires ssl", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = "postgres"
		cfg.Database.Password = "secret"
		assert.ErrorContains(t, cfg.validate(), "sslmode")
	})

	t.Run("wildcard CORS is rejected", func(t *testing.T) {
		cfg := base()
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		assert.ErrorContains(t, cfg.validate(), "cors_allow_origins")
	})

	t.Run("seeding is rejected", func(t *testing.T) {
		cfg := base()
		cfg.Seed.Enabled = true
		assert.ErrorContains(t, cfg.validate(), "seed.enabled")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "pos",
		Password: "p@ss#1",
		DBName:   "backoffice",
		SSLMode:  "disable",
	}
	dsn := d.DSN()
	assert.Contains(t, dsn, "p%40ss%231")
	assert.Contains(t, dsn, "@db:5432/backoffice")
	assert.Contains(t, dsn, "sslmode=disable")
}
