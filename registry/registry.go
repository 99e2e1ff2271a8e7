// Package registry owns the authoritative order state: the mapping from
// order ID to status and the counter that issues new IDs.
//
// All mutation goes through a Registry. It is built once at process start
// and handed to the service layer; tests build as many as they like.
package registry

import (
	"fmt"

	"go.uber.org/zap"

	"coffee/domain/order"
	"coffee/infra/memory"
	"coffee/infra/pebblestore"
	"coffee/infra/sequence"
)

const (
	BackendMemory = "memory"
	BackendPebble = "pebble"
)

// Store is the status map behind a Registry.
// Implementations must be safe for concurrent use.
type Store interface {
	Put(id order.ID, st order.Status) error
	Get(id order.ID) (order.Status, bool, error)
	Len() (int, error)
	Close() error
}

type Registry struct {
	seq   *sequence.Sequencer
	store Store
}

// New returns a registry over store with the counter seeded so the first
// allocated ID is 1.
func New(store Store) *Registry {
	return &Registry{
		seq:   sequence.New(0),
		store: store,
	}
}

// Open builds a registry on the named backend.
func Open(backend string, log *zap.Logger) (*Registry, error) {
	switch backend {
	case "", BackendMemory:
		return New(memory.NewStore()), nil
	case BackendPebble:
		s, err := pebblestore.Open(log)
		if err != nil {
			return nil, err
		}
		return New(s), nil
	default:
		return nil, fmt.Errorf("unknown registry backend %q", backend)
	}
}

// Allocate returns a fresh, never before issued order ID. Past
// order.MaxID it fails with order.ErrIDsExhausted.
func (r *Registry) Allocate() (order.ID, error) {
	next := r.seq.Next()
	if next > uint64(order.MaxID) {
		return 0, order.ErrIDsExhausted
	}
	return order.ID(next), nil
}

// SetStatus inserts or overwrites the status of id.
func (r *Registry) SetStatus(id order.ID, st order.Status) error {
	if err := r.store.Put(id, st); err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}

// Status returns the current status of id. Unknown IDs yield a
// *order.NotFoundError.
func (r *Registry) Status(id order.ID) (order.Status, error) {
	st, ok, err := r.store.Get(id)
	if err != nil {
		return "", fmt.Errorf("get status: %w", err)
	}
	if !ok {
		return "", &order.NotFoundError{ID: id}
	}
	return st, nil
}

// Issued returns how many IDs have been allocated so far.
func (r *Registry) Issued() uint64 {
	return min(r.seq.Current(), uint64(order.MaxID))
}

// Summary reports issued IDs and stored orders, for shutdown logs.
type Summary struct {
	Issued uint64
	Stored int
}

func (r *Registry) Summary() (Summary, error) {
	n, err := r.store.Len()
	if err != nil {
		return Summary{}, fmt.Errorf("count orders: %w", err)
	}
	return Summary{Issued: r.Issued(), Stored: n}, nil
}

func (r *Registry) Close() error {
	return r.store.Close()
}
