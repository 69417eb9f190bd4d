// Package memory provides an in-process implementation of storage.Store.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/courtsplit/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps values in a map. Contents are lost when the process exits.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty Store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

func (s *Store) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }
