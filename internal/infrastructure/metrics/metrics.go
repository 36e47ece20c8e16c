// Package metrics holds the Prometheus collectors of the data layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Collection writes, by key and outcome ("ok" or "error").
	PersistWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contractor_persist_writes_total",
			Help: "Full-collection writes to the key/value store",
		},
		[]string{"key", "status"},
	)

	PersistWriteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contractor_persist_write_duration_seconds",
			Help:    "Time spent writing a collection, retries included",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"key"},
	)

	// Loads that returned the fallback, by key and reason.
	LoadFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contractor_load_fallbacks_total",
			Help: "Collection loads answered with the fallback value",
		},
		[]string{"key", "reason"},
	)

	EntitiesAddedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contractor_entities_added_total",
			Help: "Entities added to the in-memory collections",
		},
		[]string{"entity"},
	)

	CollectionSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "contractor_collection_size",
			Help: "Current number of entities per collection",
		},
		[]string{"key"},
	)
)
