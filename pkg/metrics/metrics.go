// Package metrics holds the Prometheus collectors shared across the
// application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// ExportRuns counts finished export runs by terminal status.
	ExportRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "metashare",
		Name:      "export_runs_total",
		Help:      "Finished export runs by terminal status.",
	}, []string{"status"})

	// ExportDuration observes wall-clock duration of whole export runs.
	ExportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "metashare",
		Name:      "export_duration_seconds",
		Help:      "Wall-clock duration of export runs.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 300},
	})

	// ExportItems counts records handled by export runs, split into the
	// explicitly selected ones and the ones discovered through references.
	ExportItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "metashare",
		Name:      "export_items_total",
		Help:      "Records included in export runs by origin.",
	}, []string{"origin"})

	// ExportChunks counts serialized chunk bodies.
	ExportChunks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "metashare",
		Name:      "export_chunks_total",
		Help:      "Serialized chunk bodies produced by export runs.",
	})
)

// Origin label values for ExportItems.
const (
	OriginExplicit = "explicit"
	OriginRelated  = "related"
)
