package storage

import (
	"fmt"

	"filesmanager/internal/config"
)

// New builds the backend selected by cfg.Backend.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case config.StorageBackendLocal, "":
		return NewLocal(cfg.FolderPath)
	case config.StorageBackendMinIO:
		return NewMinIO(cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
