package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Package-level collectors; promauto registers them on import.

var (
	// InsertsTotal counts accepted insert operations.
	InsertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smallworld_inserts_total",
		Help: "Total number of vectors inserted into the index",
	})

	// SearchesTotal counts search operations by outcome.
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smallworld_searches_total",
		Help: "Total number of search requests processed",
	}, []string{"status"})

	// SearchDuration measures end-to-end search latency.
	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "smallworld_search_duration_seconds",
		Help:    "Duration of search requests in seconds",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	// IndexedVectors tracks the current index size.
	IndexedVectors = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "smallworld_indexed_vectors",
		Help: "Number of vectors currently held by the index",
	})
)
