// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Mutations counts applied ledger mutations by operation.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courtsplit",
		Name:      "mutations_total",
		Help:      "Ledger mutations applied, by operation.",
	}, []string{"op"})

	// Saves counts full-collection saves by result (ok, error).
	Saves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courtsplit",
		Name:      "saves_total",
		Help:      "Full-collection saves to the key-value store, by result.",
	}, []string{"result"})

	// DroppedRecords counts malformed records skipped while loading, by kind (event, player).
	DroppedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courtsplit",
		Name:      "dropped_records_total",
		Help:      "Malformed persisted records skipped during load, by kind.",
	}, []string{"kind"})

	// Events is the current size of the event collection.
	Events = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "courtsplit",
		Name:      "events",
		Help:      "Events currently held in the ledger.",
	})

	// RPCs counts handled RPCs by procedure and Connect code ("ok" on success).
	RPCs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courtsplit",
		Name:      "rpc_requests_total",
		Help:      "Handled RPCs, by procedure and result code.",
	}, []string{"procedure", "code"})
)
