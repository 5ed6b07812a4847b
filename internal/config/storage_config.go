package config

import (
	"os"
	"path/filepath"
)

const (
	storageBackendVar = "ROOMSHARE_STORAGE"
	storagePathVar    = "ROOMSHARE_STORAGE_PATH"
)

type StorageConfig interface {
	GetStorageBackend() string
	GetStoragePath() string
	GetStoragePathFor(backend string) string
}

type Storage struct{}

var _ StorageConfig = Storage{}

// GetStorageBackend returns one of "file", "sqlite" or "memory".
func (Storage) GetStorageBackend() string {
	return GetEnv(storageBackendVar, "file")
}

func (s Storage) GetStoragePath() string {
	return s.GetStoragePathFor(s.GetStorageBackend())
}

// GetStoragePathFor returns ROOMSHARE_STORAGE_PATH if set, otherwise the
// default file for backend under ~/.roomshare.
func (Storage) GetStoragePathFor(backend string) string {
	if path := os.Getenv(storagePathVar); path != "" {
		return path
	}
	name := "session.yaml"
	if backend == "sqlite" {
		name = "session.db"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".roomshare", name)
	}
	return filepath.Join(home, ".roomshare", name)
}
