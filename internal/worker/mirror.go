// Package worker mirrors transaction events into a spreadsheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"tracker/internal/amqp"
	"tracker/internal/core"
	"tracker/internal/sheets"
	"tracker/internal/store"
)

// MirrorWorker consumes transaction events and appends created
// transactions to a spreadsheet. The event carries only the ID; the
// worker fetches the full record from the store.
type MirrorWorker struct {
	fetcher store.Fetcher
	writer  sheets.TransactionWriter
}

func NewMirrorWorker(fetcher store.Fetcher, writer sheets.TransactionWriter) *MirrorWorker {
	return &MirrorWorker{fetcher: fetcher, writer: writer}
}

// HandleEvent processes one event. Deleted events are logged only;
// spreadsheet rows have no stable reference back to a transaction ID,
// so removal is a manual operation.
func (w *MirrorWorker) HandleEvent(ctx context.Context, ev *amqp.TransactionEvent) error {
	switch ev.Action {
	case amqp.ActionCreated:
		return w.mirrorCreated(ctx, ev.ID)
	case amqp.ActionDeleted:
		slog.InfoContext(ctx, "Transaction deleted, spreadsheet row left in place", "id", ev.ID)
		return nil
	default:
		slog.WarnContext(ctx, "Unknown event action, skipping", "action", ev.Action, "id", ev.ID)
		return nil
	}
}

func (w *MirrorWorker) mirrorCreated(ctx context.Context, id string) error {
	set, err := w.fetcher.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch transactions: %w", err)
	}

	tx, ok := findByID(set, id)
	if !ok {
		// Deleted before the event was processed. Nothing to mirror.
		slog.WarnContext(ctx, "Transaction not found, skipping mirror", "id", id)
		return nil
	}

	ref, err := w.writer.Append(ctx, tx)
	if err != nil {
		return fmt.Errorf("append transaction %s: %w", id, err)
	}

	slog.InfoContext(ctx, "Mirrored transaction to spreadsheet", "id", id, "ref", ref)
	return nil
}

func findByID(set []core.Transaction, id string) (core.Transaction, bool) {
	for _, t := range set {
		if t.ID == id {
			return t, true
		}
	}
	return core.Transaction{}, false
}
