package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffee/domain/order"
)

func TestStorePutGet(t *testing.T) {
	s := NewStore()

	_, ok, err := s.Get(1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(1, order.StatusPreparing))
	st, ok, err := s.Get(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, order.StatusPreparing, st)

	require.NoError(t, s.Put(1, "Ready"))
	st, _, _ = s.Get(1)
	assert.Equal(t, order.Status("Ready"), st)
	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStoreConcurrentWriters(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 1; i <= 200; i++ {
		wg.Add(2)
		id := order.ID(i)
		go func() {
			defer wg.Done()
			_ = s.Put(id, order.Status(fmt.Sprintf("s-%d", id)))
		}()
		go func() {
			defer wg.Done()
			_, _, _ = s.Get(id)
		}()
	}
	wg.Wait()

	n, err := s.Len()
	require.NoError(t, err)
	require.Equal(t, 200, n)
	for i := 1; i <= 200; i++ {
		st, ok, _ := s.Get(order.ID(i))
		require.True(t, ok)
		assert.Equal(t, order.Status(fmt.Sprintf("s-%d", i)), st)
	}
}
