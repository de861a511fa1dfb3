package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sqliteConfig = `env:
  env: test
  serviceName: pocketratings
http:
  port: 8080
database:
  driver: SQLite
  sqlitePath: ""
cache:
  products:
    enabled: true
  reviews:
    enabled: false
secretKey:
  access: a
  refresh: r
auth:
  bcryptCost: 4
  accessTTL: 5m
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadWithEnv_ExplicitFileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, sqliteConfig)
	t.Setenv("CACHE_REVIEWS_ENABLED", "true")

	cfg, err := LoadWithEnv[Config](path)
	require.NoError(t, err)
	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.Database.SQLitePath)
	assert.True(t, cfg.Cache.Products.Enabled)
	assert.True(t, cfg.Cache.Reviews.Enabled)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, defaultRefreshTTL, cfg.Auth.RefreshTTL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config](filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Driver: "mysql"}}
		require.Error(t, cfg.applyDefaults())
	})

	t.Run("postgres requires connection settings", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.applyDefaults()
		require.Error(t, err)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	})
}
