// Package memory provides an in-process store adapter for development and
// tests. Change signals are delivered through an in-process notifier.
package memory

import (
	"context"
	"fmt"
	"sync"

	"tracker/internal/core"
	"tracker/internal/store"
)

type Store struct {
	mu       sync.Mutex
	items    []core.Transaction
	seq      int
	notifier *store.Notifier
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{notifier: store.NewNotifier()}
}

// Seed inserts transactions without assigning ids for entries that already
// have one. Used to preload fixtures.
func (s *Store) Seed(items ...core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range items {
		if t.ID == "" {
			s.seq++
			t.ID = fmt.Sprintf("mem:%d", s.seq)
		}
		s.items = append(s.items, t)
	}
}

func (s *Store) FetchAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Store) Insert(_ context.Context, t core.Transaction) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	s.seq++
	t.ID = fmt.Sprintf("mem:%d", s.seq)
	s.items = append(s.items, t)
	s.mu.Unlock()

	s.notifier.Notify()
	return t.ID, nil
}

func (s *Store) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, t := range s.items {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return store.ErrNotFound
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.mu.Unlock()

	s.notifier.Notify()
	return nil
}

func (s *Store) Subscribe(ctx context.Context, onChange func()) error {
	return s.notifier.Subscribe(ctx, onChange)
}
