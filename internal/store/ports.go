// Package store defines the ports every document-store adapter implements.
package store

import (
	"context"
	"errors"

	"tracker/internal/core"
)

// ErrNotFound is returned by DeleteByID when no document has the given id.
var ErrNotFound = errors.New("transaction not found")

// Ports for outbound store adapters.
type (
	Fetcher interface {
		// FetchAll returns every persisted transaction. No querying, no
		// pagination: consumers replace their state wholesale.
		FetchAll(ctx context.Context) ([]core.Transaction, error)
	}

	Inserter interface {
		// Insert persists a transaction and returns the store-assigned id.
		Insert(ctx context.Context, t core.Transaction) (id string, err error)
	}

	Deleter interface {
		DeleteByID(ctx context.Context, id string) error
	}

	// Subscriber delivers collection-change signals. onChange is invoked
	// at least once per change by any actor, this client's own writes
	// included, with no payload and no ordering guarantee relative to the
	// local write. Subscribe blocks until ctx is done.
	Subscriber interface {
		Subscribe(ctx context.Context, onChange func()) error
	}
)

// Store is the full surface the transaction repository depends on.
type Store interface {
	Fetcher
	Inserter
	Deleter
	Subscriber
}
