// Package storage provides the durable key/value store that keeps the
// session token and user record between runs.
package storage

import (
	"github.com/jrsteele09/go-roomshare-client/internal/errors"
)

// Durable keys
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Backend names accepted by Open
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Store is a string key/value store that survives restarts (except Memory).
type Store interface {
	// Get returns the value and whether the key was present
	Get(key string) (string, bool, error)

	// Set creates or overwrites a key
	Set(key, value string) error

	// Remove deletes a key; removing a missing key is not an error
	Remove(key string) error
}

// Open returns the store for the named backend.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFile(path), nil
	case BackendSQLite:
		return NewSQLite(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownBackend, "[storage Open] %q", backend)
	}
}
