package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tasktracker/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_PORT", "DB_DRIVER", "DB_PORT", "DB_PARAMS", "TRUSTED_PROXIES", "CONFIG_PATH"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	require.Equal(t, config.EnvProduction, cfg.AppEnv)
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, config.DriverMySQL, cfg.DbDriver)
	require.Equal(t, "3306", cfg.DbPort)
	require.Equal(t, 5*time.Second, cfg.DbQueryTimeout)
	require.Equal(t, 10*time.Minute, cfg.RelayTTL)
	require.True(t, cfg.DbMigrate)
	require.Nil(t, cfg.TrustedProxies)
	require.False(t, cfg.IsTest())
}

func TestLoadConfig_PostgresFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("APP_ENV", "Test")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,192.168.1.0/24")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	require.True(t, cfg.IsTest())
	require.Equal(t, config.DriverPostgres, cfg.DbDriver)
	require.Equal(t, "5432", cfg.DbPort)
	require.Equal(t, 2*time.Second, cfg.DbQueryTimeout)
	require.Equal(t, []string{"10.0.0.1", "192.168.1.0/24"}, cfg.TrustedProxies)
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := config.LoadConfig()

	require.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestLoadConfig_ReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_env: dev\napp_port: \"9090\"\ndb_driver: postgres\n"), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_DRIVER", "")
	require.NoError(t, os.Unsetenv("APP_ENV"))
	require.NoError(t, os.Unsetenv("APP_PORT"))
	require.NoError(t, os.Unsetenv("DB_DRIVER"))

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	require.True(t, cfg.IsDev())
	require.Equal(t, "9090", cfg.AppPort)
	require.Equal(t, config.DriverPostgres, cfg.DbDriver)
}

func TestLoadConfig_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("APP_PORT", "7070")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	require.Equal(t, "7070", cfg.AppPort)
}
