package config

import (
	"os"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("FOLDER_PATH", "/var/lib/files")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Storage.MinIO.UseSSL)
	assert.Equal(t, StorageBackendLocal, cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/files", cfg.Storage.FolderPath)
	assert.False(t, cfg.Storage.MinIO.Enabled)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FOLDER_PATH", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("STORAGE_BACKEND", "")

	cfg := Load()

	assert.Equal(t, DefaultFolderPath, cfg.Storage.FolderPath)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "8080", cfg.Port)
}

func validConfig() *AppConfig {
	return &AppConfig{
		Port:     "8080",
		Timezone: "UTC",
		LogLevel: "info",
		Database: DatabaseConfig{Host: "localhost", Port: "5432", User: "user", Name: "files"},
		Redis:    RedisConfig{URL: "redis://localhost:6379/0"},
		Storage:  StorageConfig{Backend: StorageBackendLocal, FolderPath: DefaultFolderPath},
	}
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr string
	}{
		{
			name:   "valid local config",
			mutate: func(c *AppConfig) {},
		},
		{
			name:    "missing database host",
			mutate:  func(c *AppConfig) { c.Database.Host = "" },
			wantErr: "AppConfig.Database.Host",
		},
		{
			name:    "unknown storage backend",
			mutate:  func(c *AppConfig) { c.Storage.Backend = "ftp" },
			wantErr: "AppConfig.Storage.Backend",
		},
		{
			name: "minio backend without endpoint",
			mutate: func(c *AppConfig) {
				c.Storage.Backend = StorageBackendMinIO
				c.Storage.MinIO.Enabled = true
			},
			wantErr: "AppConfig.Storage.MinIO.Endpoint",
		},
		{
			name:    "bad log level",
			mutate:  func(c *AppConfig) { c.LogLevel = "verbose" },
			wantErr: "AppConfig.LogLevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAppConfig_Location(t *testing.T) {
	cfg := &AppConfig{Timezone: "Asia/Jakarta"}
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())

	cfg.Timezone = "Nowhere/Atlantis"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
