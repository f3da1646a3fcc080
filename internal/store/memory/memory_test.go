package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"tracker/internal/core"
	"tracker/internal/store"
)

func entry(desc string) core.Transaction {
	return core.Transaction{
		Amount:      core.Money{Cents: 100},
		Type:        core.Expense,
		Category:    "Food",
		Date:        core.NewDate(2025, 1, 1),
		Description: desc,
	}
}

func TestInsertAssignsID(t *testing.T) {
	s := New()
	id, err := s.Insert(context.Background(), entry("groceries"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty id")
	}

	all, err := s.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(all) != 1 || all[0].ID != id {
		t.Fatalf("expected one entry with id %s, got %v", id, all)
	}
}

func TestInsertRejectsInvalid(t *testing.T) {
	s := New()
	bad := entry("groceries")
	bad.Amount.Cents = 0
	if _, err := s.Insert(context.Background(), bad); err == nil {
		t.Fatal("expected validation error")
	}
	if all, _ := s.FetchAll(context.Background()); len(all) != 0 {
		t.Fatal("rejected insert must not change the store")
	}
}

func TestDeleteByID(t *testing.T) {
	s := New()
	id, _ := s.Insert(context.Background(), entry("groceries"))

	if err := s.DeleteByID(context.Background(), id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if all, _ := s.FetchAll(context.Background()); len(all) != 0 {
		t.Fatal("expected empty store after delete")
	}

	err := s.DeleteByID(context.Background(), "mem:999")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchAllReturnsCopy(t *testing.T) {
	s := New()
	_, _ = s.Insert(context.Background(), entry("groceries"))

	all, _ := s.FetchAll(context.Background())
	all[0].Description = "mutated"

	again, _ := s.FetchAll(context.Background())
	if again[0].Description != "groceries" {
		t.Fatal("FetchAll must return a copy")
	}
}

func TestSubscribeFiresOnWrites(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 4)
	go func() {
		_ = s.Subscribe(ctx, func() { changes <- struct{}{} })
	}()

	// Give the subscriber a moment to register.
	time.Sleep(20 * time.Millisecond)

	id, _ := s.Insert(context.Background(), entry("groceries"))
	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal after insert")
	}

	_ = s.DeleteByID(context.Background(), id)
	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal after delete")
	}
}
