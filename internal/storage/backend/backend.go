// Package backend opens the storage.Store selected by configuration.
package backend

import (
	"context"
	"fmt"

	"github.com/mmynk/courtsplit/internal/config"
	"github.com/mmynk/courtsplit/internal/storage"
	"github.com/mmynk/courtsplit/internal/storage/memory"
	"github.com/mmynk/courtsplit/internal/storage/redis"
	"github.com/mmynk/courtsplit/internal/storage/sqlite"
)

// Open returns the configured key-value store.
func Open(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendRedis:
		store, err := redis.New(ctx, cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
