package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetCreatesAndReuses(t *testing.T) {
	s := NewStore(time.Hour)

	id, c := s.Get("")
	require.NotEmpty(t, id)
	c.AddItem("Chicken Mild", 1)

	id2, c2 := s.Get(id)
	assert.Equal(t, id, id2)
	assert.Len(t, c2.Lines, 1)
	assert.Equal(t, 1, s.Len())
}

func TestStoreUnknownIDGetsFreshCart(t *testing.T) {
	s := NewStore(time.Hour)

	id, c := s.Get("stale-id")
	assert.Equal(t, "stale-id", id)
	assert.Empty(t, c.Lines)
}

func TestStoreDrop(t *testing.T) {
	s := NewStore(time.Hour)
	id, _ := s.Get("")
	s.Drop(id)
	assert.Equal(t, 0, s.Len())

	// dropped carts come back empty
	_, c := s.Get(id)
	assert.Empty(t, c.Lines)
}

func TestStoreSweepsExpiredCarts(t *testing.T) {
	s := NewStore(10 * time.Millisecond)
	id, c := s.Get("")
	c.AddItem("Chicken Mild", 1)

	time.Sleep(30 * time.Millisecond)

	_, c2 := s.Get(id)
	assert.Empty(t, c2.Lines)
}
