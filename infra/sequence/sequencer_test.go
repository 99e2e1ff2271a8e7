package sequence

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencerStartsAfterSeed(t *testing.T) {
	s := New(0)
	assert.Equal(t, uint64(0), s.Current())
	assert.Equal(t, uint64(1), s.Next())
	assert.Equal(t, uint64(2), s.Next())
	assert.Equal(t, uint64(2), s.Current())
}

func TestSequencerConcurrentUnique(t *testing.T) {
	const (
		workers = 16
		perG    = 500
	)
	s := New(0)

	var (
		mu   sync.Mutex
		seen = make(map[uint64]struct{}, workers*perG)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]uint64, 0, perG)
			for i := 0; i < perG; i++ {
				local = append(local, s.Next())
			}
			mu.Lock()
			for _, v := range local {
				seen[v] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*perG)
	for v := uint64(1); v <= workers*perG; v++ {
		_, ok := seen[v]
		require.Truef(t, ok, "missing id %d", v)
	}
	assert.Equal(t, uint64(workers*perG), s.Current())
}
