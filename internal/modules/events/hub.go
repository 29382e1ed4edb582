// Package events fans order changes out to admin dashboard streams.
// Subscriptions are scoped resources: acquired on stream start, released
// deterministically when the consumer goes away.
package events

import "sync"

type Type string

const (
	OrderCreated        Type = "order_created"
	OrderStatusChanged  Type = "order_status_changed"
	NotificationCreated Type = "notification_created"
)

type Event struct {
	Type    Type   `json:"type"`
	OrderID string `json:"order_id"`
	Status  string `json:"status,omitempty"`
}

type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener. The returned cancel func releases the
// subscription and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan Event, 16)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber. Slow consumers whose buffer
// is full are skipped rather than blocking the publisher.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Len reports the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
