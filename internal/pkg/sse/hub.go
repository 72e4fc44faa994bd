package sse

import (
	"sync"
)

// Event represents an SSE event pushed to dashboard subscribers.
type Event struct {
	OrganizationID string
	Event          string
	Data           interface{}
}

// Hub fans check-log events out to SSE subscribers. Subscriptions are keyed
// by organization, so a subscriber only ever receives events for the tenant
// it subscribed to.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber for an organization and returns the event
// channel plus a cleanup function. Cleanup is idempotent-unsafe: call once,
// on stream teardown.
func (h *Hub) Subscribe(organizationID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[organizationID] == nil {
		h.subscribers[organizationID] = make(map[chan Event]struct{})
	}
	h.subscribers[organizationID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[organizationID], ch)
		close(ch)
		if len(h.subscribers[organizationID]) == 0 {
			delete(h.subscribers, organizationID)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of one organization. Slow
// subscribers with a full channel are skipped rather than blocked on.
func (h *Hub) Publish(organizationID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[organizationID]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for an organization.
func (h *Hub) SubscriberCount(organizationID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[organizationID]; ok {
		return len(subs)
	}
	return 0
}

// TotalSubscribers returns the number of active subscribers across all organizations.
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
