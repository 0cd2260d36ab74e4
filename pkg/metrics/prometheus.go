package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RefreshTotal    prometheus.Counter
	RefreshFailures *prometheus.CounterVec
	RefreshDuration prometheus.Histogram
	RecordsFetched  *prometheus.GaugeVec
	CoercedAmounts  prometheus.Counter
	ExportsTotal    prometheus.Counter
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RefreshTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refreshes_total",
			Help:      "The total number of successful snapshot refreshes",
		}),
		RefreshFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_failures_total",
			Help:      "The total number of failed category fetches",
		}, []string{"category"}),
		RefreshDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "refresh_duration_seconds",
			Help:      "Time taken to refresh the snapshot",
			Buckets:   prometheus.DefBuckets,
		}),
		RecordsFetched: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records_fetched",
			Help:      "Records held by the current snapshot, per category",
		}, []string{"category"}),
		CoercedAmounts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coerced_amounts_total",
			Help:      "Amount fields coerced to zero because they were missing or non-numeric",
		}),
		ExportsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "The total number of export files produced",
		}),
	}
}
