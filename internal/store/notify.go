package store

import (
	"context"
	"sync"
)

// Notifier fans collection-change signals out to in-process subscribers.
// The memory and sqlite adapters use it to honor the Subscriber port; the
// mongo adapter gets the same semantics from server-side change streams.
//
// Delivery is at-least-once and asynchronous: Notify never blocks on a slow
// subscriber, and a subscriber may observe coalesced or duplicate signals.
// That is safe because the consumer reacts by reloading the full set.
type Notifier struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan struct{})}
}

// Notify signals every current subscriber that the collection changed.
func (n *Notifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
			// Subscriber already has a pending signal; reload is
			// idempotent so coalescing is fine.
		}
	}
}

// Subscribe registers onChange and blocks until ctx is done. onChange runs
// on the subscriber's goroutine, one invocation at a time.
func (n *Notifier) Subscribe(ctx context.Context, onChange func()) error {
	ch := make(chan struct{}, 1)

	n.mu.Lock()
	id := n.next
	n.next++
	n.subs[id] = ch
	n.mu.Unlock()

	defer func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
			onChange()
		}
	}
}
