// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrLocked is returned when opening a store that another process holds.
// Every process rewrites the whole collection, so a store has one writer.
var ErrLocked = errors.New("store is held by another process")

// Store is an opaque string key-value store.
// This abstraction allows swapping storage backends (SQLite, Redis, memory)
// without changing the persistence layer.
type Store interface {
	// Get returns the value stored under key.
	// A missing key is not an error: it yields the empty string.
	Get(ctx context.Context, key string) (string, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
