// Package pebblestore stores order statuses in a Pebble database opened on an
// in-memory filesystem. The database lives and dies with the process.
package pebblestore

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"go.uber.org/zap"

	"coffee/domain/order"
)

var keyPrefix = []byte("order/")

// Store is a Pebble-backed order status store.
type Store struct {
	db *pebble.DB
}

// Open creates an empty database on a fresh in-memory VFS.
// Pebble's own log lines are routed to log.
func Open(log *zap.Logger) (*Store, error) {
	db, err := pebble.Open("", &pebble.Options{
		FS:         vfs.NewMem(),
		DisableWAL: true,
		Logger:     log.Named("pebble").Sugar(),
	})
	if err != nil {
		return nil, fmt.Errorf("open pebble: %w", err)
	}
	return &Store{db: db}, nil
}

// Put inserts or overwrites the status for id.
func (s *Store) Put(id order.ID, st order.Status) error {
	if err := s.db.Set(keyFor(id), []byte(st), pebble.NoSync); err != nil {
		return fmt.Errorf("pebble set order %d: %w", id, err)
	}
	return nil
}

// Get reports the status for id and whether it exists.
func (s *Store) Get(id order.ID) (order.Status, bool, error) {
	val, closer, err := s.db.Get(keyFor(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("pebble get order %d: %w", id, err)
	}
	// val is only valid until closer is closed.
	st := order.Status(val)
	if err := closer.Close(); err != nil {
		return "", false, err
	}
	return st, true, nil
}

// Scan calls fn for every stored order in ascending ID order.
func (s *Store) Scan(fn func(id order.ID, st order.Status) error) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: keyPrefix,
		UpperBound: []byte("order/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		id, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if err := fn(id, order.Status(iter.Value())); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Len counts stored orders with a full scan.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.Scan(func(order.ID, order.Status) error {
		n++
		return nil
	})
	return n, err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Keys are zero padded so lexical order equals numeric order.
func keyFor(id order.ID) []byte {
	return []byte(fmt.Sprintf("order/%020d", id))
}

func parseKey(b []byte) (order.ID, error) {
	var id int64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, keyPrefix)), "%d", &id)
	return order.ID(id), err
}
