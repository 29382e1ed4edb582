package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds session carts in memory, keyed by the signed cart cookie id.
// Carts live for the browsing session only; there is no persistence across
// restarts.
type Store struct {
	mu  sync.Mutex
	ttl time.Duration

	carts map[string]*entry
}

type entry struct {
	cart     *Cart
	lastSeen time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{ttl: ttl, carts: make(map[string]*entry)}
}

// Get returns the cart for an id, creating it if needed. An empty id gets a
// fresh id assigned.
func (s *Store) Get(id string) (string, *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	if id != "" {
		if e, ok := s.carts[id]; ok {
			e.lastSeen = time.Now()
			return id, e.cart
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	c := New()
	s.carts[id] = &entry{cart: c, lastSeen: time.Now()}
	return id, c
}

// Drop removes a session cart (order submitted, cart cleared server side).
func (s *Store) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}

// Len reports the number of live carts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

func (s *Store) sweepLocked() {
	cutoff := time.Now().Add(-s.ttl)
	for id, e := range s.carts {
		if e.lastSeen.Before(cutoff) {
			delete(s.carts, id)
		}
	}
}
