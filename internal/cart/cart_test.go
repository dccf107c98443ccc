package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCreatesSession(t *testing.T) {
	store := NewStore()
	store.Update(1, func(s *Session) {
		s.Lines = append(s.Lines, Line{ProductID: 42, Quantity: 2})
	})

	snap := store.Snapshot(1)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, int64(42), snap.Lines[0].ProductID)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, 1, store.Len())
}

func TestRepeatedAddsAppendSeparateLines(t *testing.T) {
	store := NewStore()
	for i := 0; i < 3; i++ {
		store.Update(7, func(s *Session) {
			s.Lines = append(s.Lines, Line{ProductID: 5, Quantity: 1})
		})
	}

	snap := store.Snapshot(7)
	assert.Len(t, snap.Lines, 3)
}

func TestTouchCreatesEmptySession(t *testing.T) {
	store := NewStore()
	store.Touch(5)

	assert.Equal(t, 1, store.Len())
	snap := store.Snapshot(5)
	assert.Empty(t, snap.Lines)
	assert.Nil(t, snap.Pending)

	// Touching again is a no-op.
	store.Touch(5)
	assert.Equal(t, 1, store.Len())
}

func TestSnapshotDoesNotCreate(t *testing.T) {
	store := NewStore()
	snap := store.Snapshot(99)
	assert.Empty(t, snap.Lines)
	assert.Nil(t, snap.Pending)
	assert.Equal(t, 0, store.Len())
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewStore()
	store.Update(1, func(s *Session) {
		s.Lines = []Line{{ProductID: 1, Quantity: 1}}
		s.Pending = &Selection{ProductID: 2}
	})

	snap := store.Snapshot(1)
	snap.Lines[0].Quantity = 100
	snap.Pending.ProductID = 100

	fresh := store.Snapshot(1)
	assert.Equal(t, 1, fresh.Lines[0].Quantity)
	assert.Equal(t, int64(2), fresh.Pending.ProductID)
}

func TestClearCart(t *testing.T) {
	store := NewStore()
	store.Update(1, func(s *Session) {
		s.Lines = []Line{{ProductID: 1, Quantity: 1}}
		s.Pending = &Selection{ProductID: 2}
	})

	store.ClearCart(1)
	snap := store.Snapshot(1)
	assert.Empty(t, snap.Lines)
	assert.Nil(t, snap.Pending)

	// Clearing a user that never started is a no-op.
	store.ClearCart(404)
	assert.Equal(t, 1, store.Len())
}

func TestConcurrentUpdates(t *testing.T) {
	store := NewStore()
	const users = 8
	const adds = 50

	var wg sync.WaitGroup
	for u := int64(0); u < users; u++ {
		for i := 0; i < adds; i++ {
			wg.Add(1)
			go func(userID int64) {
				defer wg.Done()
				store.Update(userID, func(s *Session) {
					s.Lines = append(s.Lines, Line{ProductID: userID, Quantity: 1})
				})
			}(u)
		}
	}
	wg.Wait()

	assert.Equal(t, users, store.Len())
	for u := int64(0); u < users; u++ {
		assert.Len(t, store.Snapshot(u).Lines, adds)
	}
}
