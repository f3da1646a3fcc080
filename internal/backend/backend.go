// Package backend selects and constructs the transaction store from
// configuration.
package backend

import (
	"context"

	"tracker/internal/store"
)

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// BackendResult contains the store instance and optional cleanup function.
type BackendResult struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// Factory creates stores based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation.
type Config struct {
	Type BackendType

	// Mongo specific
	MongoURI      string
	MongoDatabase string

	// SQLite specific
	SQLiteDBPath string
}

// BackendType represents the type of backend.
type BackendType string

const (
	MongoBackend  BackendType = "mongo"
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case MongoBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
