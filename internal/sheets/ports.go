// Package sheets defines the ports the mirror worker needs from a
// spreadsheet backend.
package sheets

import (
	"context"

	"tracker/internal/core"
)

// TransactionWriter appends one transaction as a row and returns a
// reference to where it landed.
type TransactionWriter interface {
	Append(ctx context.Context, t core.Transaction) (string, error)
}
