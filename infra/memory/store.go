package memory

import (
	"sync"

	"coffee/domain/order"
)

// Store maps order IDs to their current status.
type Store struct {
	mu       sync.RWMutex
	statuses map[order.ID]order.Status
}

func NewStore() *Store {
	return &Store{statuses: make(map[order.ID]order.Status)}
}

// Put inserts or overwrites the status for id.
func (s *Store) Put(id order.ID, st order.Status) error {
	s.mu.Lock()
	s.statuses[id] = st
	s.mu.Unlock()
	return nil
}

// Get reports the status for id and whether it exists.
func (s *Store) Get(id order.ID) (order.Status, bool, error) {
	s.mu.RLock()
	st, ok := s.statuses[id]
	s.mu.RUnlock()
	return st, ok, nil
}

// Len returns the number of stored orders.
func (s *Store) Len() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.statuses), nil
}

func (s *Store) Close() error { return nil }
