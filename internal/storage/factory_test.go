package storage

import (
	"testing"

	"filesmanager/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("local backend", func(t *testing.T) {
		s, err := New(config.StorageConfig{Backend: config.StorageBackendLocal, FolderPath: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &localStorage{}, s)
	})

	t.Run("minio backend validates its config", func(t *testing.T) {
		_, err := New(config.StorageConfig{Backend: config.StorageBackendMinIO})
		assert.EqualError(t, err, "minio endpoint is required")

		_, err = New(config.StorageConfig{Backend: config.StorageBackendMinIO, MinIO: config.MinIOConfig{Endpoint: "localhost:9000"}})
		assert.EqualError(t, err, "minio credentials are required")

		_, err = New(config.StorageConfig{Backend: config.StorageBackendMinIO, MinIO: config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}})
		assert.EqualError(t, err, "minio bucket is required")
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := New(config.StorageConfig{Backend: "tape"})
		assert.Error(t, err)
	})
}
