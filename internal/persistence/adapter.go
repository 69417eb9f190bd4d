package persistence

import (
	"context"
	"fmt"

	"github.com/mmynk/courtsplit/internal/metrics"
	"github.com/mmynk/courtsplit/internal/models"
	"github.com/mmynk/courtsplit/internal/storage"
)

// DefaultKey is the store key holding the serialized collection.
const DefaultKey = "data_completa"

// Adapter saves and loads the full event collection under one key.
type Adapter struct {
	store storage.Store
	key   string
}

// NewAdapter creates an Adapter over store. An empty key selects DefaultKey.
func NewAdapter(store storage.Store, key string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{store: store, key: key}
}

// Key returns the store key in use.
func (a *Adapter) Key() string {
	return a.key
}

// Save serializes events and replaces the stored blob.
func (a *Adapter) Save(ctx context.Context, events []models.Event) error {
	if err := a.store.Put(ctx, a.key, Encode(events)); err != nil {
		metrics.Saves.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to save events: %w", err)
	}
	metrics.Saves.WithLabelValues("ok").Inc()
	return nil
}

// Load reads and decodes the stored blob. A missing key yields an empty collection.
// Only backend failures are returned as errors; malformed records are skipped.
func (a *Adapter) Load(ctx context.Context) ([]models.Event, Report, error) {
	raw, err := a.store.Get(ctx, a.key)
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to load events: %w", err)
	}

	events, report := Decode(raw)
	metrics.DroppedRecords.WithLabelValues("event").Add(float64(report.DroppedEvents))
	metrics.DroppedRecords.WithLabelValues("player").Add(float64(report.DroppedPlayers))
	return events, report, nil
}
