package sequence

import "sync/atomic"

// Sequencer hands out strictly increasing IDs.
// Safe for concurrent use; no two callers ever see the same value.
type Sequencer struct {
	last atomic.Uint64
}

// New creates a sequencer whose first Next returns start+1.
// Order registries start from 0 so the first ID is 1.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.last.Store(start)
	return s
}

// Next returns the next ID.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Current returns the last issued ID, or the start value if none was issued.
func (s *Sequencer) Current() uint64 {
	return s.last.Load()
}
