package astar

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultFound           = "found"
	resultNotFound        = "not_found"
	resultInvalidEndpoint = "invalid_endpoint"
	resultCancelled       = "cancelled"
)

// Metrics holds the Prometheus collectors updated by Search and Stepper.
// A nil *Metrics records nothing.
type Metrics struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	duration *prometheus.HistogramVec
}

// NewMetrics registers the search collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "maze_astar_search_total",
			Help: "Total searches by result and heuristic",
		}, []string{"result", "heuristic"}),
		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "maze_astar_expanded_cells",
			Help:    "Cells expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "maze_astar_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"heuristic"}),
	}
}

func (m *Metrics) observe(mode HeuristicMode, result string, expanded int, duration time.Duration) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(result, mode.String()).Inc()
	if result == resultInvalidEndpoint {
		return
	}
	m.expanded.Observe(float64(expanded))
	m.duration.WithLabelValues(mode.String()).Observe(duration.Seconds())
}
