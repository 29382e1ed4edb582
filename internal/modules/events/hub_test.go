package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	h := NewHub()
	ch1, cancel1 := h.Subscribe()
	ch2, cancel2 := h.Subscribe()
	defer cancel1()
	defer cancel2()

	h.Publish(Event{Type: OrderCreated, OrderID: "o1", Status: "pending"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, OrderCreated, ev.Type)
			assert.Equal(t, "o1", ev.OrderID)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestCancelReleasesSubscription(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	require.Equal(t, 1, h.Len())

	cancel()
	assert.Equal(t, 0, h.Len())

	_, ok := <-ch
	assert.False(t, ok, "channel should be closed after cancel")

	// cancelling twice must not panic
	cancel()
}

func TestPublishSkipsFullSubscribers(t *testing.T) {
	h := NewHub()
	_, cancelSlow := h.Subscribe()
	defer cancelSlow()

	// fill the slow subscriber's buffer and keep publishing
	for i := 0; i < 40; i++ {
		h.Publish(Event{Type: OrderCreated, OrderID: "x"})
	}

	fast, cancelFast := h.Subscribe()
	defer cancelFast()
	h.Publish(Event{Type: OrderStatusChanged, OrderID: "y", Status: "accepted"})

	select {
	case ev := <-fast:
		assert.Equal(t, OrderStatusChanged, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("publisher blocked on a full subscriber")
	}
}
