// Package watch implements the live result invalidation channel: writers
// notify the hub, the hub re-runs each subscriber's query and delivers the
// refreshed result set. Subscriptions are explicit handles, independent of
// any caller lifecycle.
package watch

import (
	"context"
	"log/slog"
	"sync"

	"roost/internal/domain/entity"

	"github.com/google/uuid"
)

// Query re-evaluates one subscriber's result set against the store.
type Query func(ctx context.Context) ([]*entity.Location, error)

// Subscription is the handle returned to one subscriber. C delivers result
// sets; Cancel stops delivery and releases the subscriber.
type Subscription struct {
	ID uuid.UUID
	C  <-chan []*entity.Location

	cancelOnce sync.Once
	cancel     func()
}

// Cancel detaches the subscription. Safe to call more than once; other
// subscribers and in-flight refreshes are unaffected.
func (s *Subscription) Cancel() {
	s.cancelOnce.Do(s.cancel)
}

type subscriber struct {
	query Query
	ch    chan []*entity.Location

	mu     sync.Mutex
	closed bool
}

// deliver replaces any undelivered result with the fresh one. No-op after
// the subscriber is detached.
func (s *subscriber) deliver(result []*entity.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	for {
		select {
		case s.ch <- result:
			return
		default:
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

func (s *subscriber) detach() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

// Hub fans store changes out to active subscribers.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]*subscriber
	closed bool
	logger *slog.Logger
}

// NewHub is the constructor for Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[uuid.UUID]*subscriber),
		logger: logger,
	}
}

// Subscribe registers a query and delivers its current result immediately.
func (h *Hub) Subscribe(ctx context.Context, query Query) (*Subscription, error) {
	initial, err := query(ctx)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	// Buffer one result set; a slow consumer sees the latest state, not a
	// backlog of intermediate ones.
	sub := &subscriber{
		query: query,
		ch:    make(chan []*entity.Location, 1),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		sub.detach()

		return &Subscription{ID: id, C: sub.ch, cancel: func() {}}, nil
	}
	h.subs[id] = sub
	h.mu.Unlock()

	sub.deliver(initial)

	return &Subscription{
		ID:     id,
		C:      sub.ch,
		cancel: func() { h.unsubscribe(id) },
	}, nil
}

// Notify re-runs every subscriber's query against the current store state
// and delivers the refreshed sets. Called after any write that can change a
// queried subset.
func (h *Hub) Notify(ctx context.Context) {
	h.mu.RLock()
	subs := make([]*subscriber, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		result, err := sub.query(ctx)
		if err != nil {
			if h.logger != nil {
				h.logger.Warn("subscription query failed", slog.Any("error", err))
			}

			continue
		}
		sub.deliver(result)
	}
}

// Close cancels every subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id, sub := range h.subs {
		sub.detach()
		delete(h.subs, id)
	}
}

// Len reports the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}

func (h *Hub) unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subs[id]; ok {
		sub.detach()
		delete(h.subs, id)
	}
}
