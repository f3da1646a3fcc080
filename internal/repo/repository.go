// Package repo owns the authoritative in-memory transaction set and the
// reload-and-recompute cycle every mutation goes through.
package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"tracker/internal/core"
	"tracker/internal/metrics"
	"tracker/internal/store"
)

// ErrStaleView reports that a write reached the store but the follow-up
// reload failed: the mutation is durable, only the local view may lag.
// Callers must not retry the write; the set catches up on the next
// successful reload.
var ErrStaleView = errors.New("view refresh failed")

// Publisher fans write events out to interested consumers (the sheets
// mirror worker). Publishing is best-effort: a failed publish never fails
// the user's action.
type Publisher interface {
	PublishCreated(ctx context.Context, id string) error
	PublishDeleted(ctx context.Context, id string) error
}

// Snapshot is a consistent read of the repository: filtered view and every
// aggregate derived from the same underlying set, taken under one lock.
type Snapshot struct {
	Filter     string
	View       []core.Transaction
	Summary    core.Summary
	Breakdown  []core.CategoryTotal
	Categories []string
}

// Repository mirrors the remote store as of the last successful reload.
// All mutations go through the store first and are reflected locally by a
// full reload, so the in-memory set never holds local-only entries.
type Repository struct {
	store  store.Store
	events Publisher // optional

	mu     sync.Mutex
	all    []core.Transaction // date descending, tie-break by fetch order
	filter string
	view   []core.Transaction
}

func New(s store.Store, events Publisher) *Repository {
	return &Repository{store: s, events: events}
}

// Reload replaces the authoritative set wholesale from the store, sorts it
// by date descending (ties keep fetch order; the tie-break is deliberately
// unspecified), and re-applies the current filter. On failure the previous
// set and view are left untouched.
//
// The filter selection survives reloads. Concurrent reload triggers may
// apply in either order; each one replaces the entire set from the source
// of truth, so the result is the same either way.
func (r *Repository) Reload(ctx context.Context) error {
	fetched, err := r.store.FetchAll(ctx)
	metrics.StoreOps.WithLabelValues("fetch_all", metrics.Status(err)).Inc()
	if err != nil {
		metrics.Reloads.WithLabelValues("error").Inc()
		return fmt.Errorf("reload transactions: %w", err)
	}

	sort.SliceStable(fetched, func(i, j int) bool {
		return fetched[i].Date.After(fetched[j].Date.Time)
	})

	r.mu.Lock()
	r.all = fetched
	r.view = core.Filter(r.all, r.filter)
	count, filter := len(r.all), r.filter
	r.mu.Unlock()

	metrics.Reloads.WithLabelValues("ok").Inc()
	slog.DebugContext(ctx, "Authoritative set reloaded", "count", count, "filter", filter)
	return nil
}

// Add inserts a validated transaction and reloads, so the addition and any
// concurrent external changes are picked up together.
func (r *Repository) Add(ctx context.Context, t core.Transaction) (string, error) {
	if err := t.Validate(); err != nil {
		return "", fmt.Errorf("add transaction: %w", err)
	}

	id, err := r.store.Insert(ctx, t)
	metrics.StoreOps.WithLabelValues("insert", metrics.Status(err)).Inc()
	if err != nil {
		return "", fmt.Errorf("add transaction: %w", err)
	}

	if r.events != nil {
		if err := r.events.PublishCreated(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Failed to publish created event", "id", id, "error", err)
		}
	}

	if err := r.Reload(ctx); err != nil {
		return id, fmt.Errorf("%w: %v", ErrStaleView, err)
	}
	return id, nil
}

// Delete removes a transaction from the store and reloads. Deleting an
// unknown id fails with store.ErrNotFound and changes nothing.
func (r *Repository) Delete(ctx context.Context, id string) error {
	err := r.store.DeleteByID(ctx, id)
	metrics.StoreOps.WithLabelValues("delete", metrics.Status(err)).Inc()
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}

	if r.events != nil {
		if err := r.events.PublishDeleted(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Failed to publish deleted event", "id", id, "error", err)
		}
	}

	if err := r.Reload(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStaleView, err)
	}
	return nil
}

// SetFilter updates the category selection and recomputes the filtered
// view locally. No remote round trip. The empty string selects everything.
func (r *Repository) SetFilter(category string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filter = category
	r.view = core.Filter(r.all, r.filter)
}

// Filter returns the current category selection.
func (r *Repository) Filter() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter
}

// Snapshot derives the filtered view, summary, category breakdown, and
// filter options from the current set, all under one lock so every figure
// describes the same data.
func (r *Repository) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	view := make([]core.Transaction, len(r.view))
	copy(view, r.view)

	return Snapshot{
		Filter:     r.filter,
		View:       view,
		Summary:    core.Summarize(view),
		Breakdown:  core.AggregateByCategory(view),
		Categories: core.Categories(r.all),
	}
}

// All returns a copy of the full authoritative set regardless of filter.
// The CSV export works from this, not from the filtered view.
func (r *Repository) All() []core.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Transaction, len(r.all))
	copy(out, r.all)
	return out
}
