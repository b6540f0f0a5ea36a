// Package metrics records round and aggregator activity as Prometheus metrics.
package metrics

import (
	"context"

	"github.com/aretw0/bikeshare/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Outcome labels for aggregations.
const (
	OutcomeStats    = "stats"
	OutcomeFallback = "fallback"
)

// Collector owns the bikeshare metrics and the registry they are exported from.
type Collector struct {
	registry     *prometheus.Registry
	rounds       *prometheus.CounterVec
	records      *prometheus.CounterVec
	aggregations *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
}

// New creates a Collector on a private registry that also carries the Go runtime collectors.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		rounds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bikeshare_rounds_total",
				Help: "Analysis rounds by city and result",
			},
			[]string{"city", "result"},
		),
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bikeshare_records_total",
				Help: "Trip records loaded and kept after filtering",
			},
			[]string{"city", "stage"},
		),
		aggregations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bikeshare_aggregations_total",
				Help: "Aggregator runs by outcome",
			},
			[]string{"aggregator", "outcome"},
		),
		loadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bikeshare_load_duration_seconds",
				Help:    "Time spent loading and filtering a city dataset",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"city"},
		),
	}
	c.registry.MustRegister(
		c.rounds,
		c.records,
		c.aggregations,
		c.loadDuration,
		collectors.NewGoCollector(),
	)
	return c
}

// Registry returns the registry to expose over HTTP.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Hooks returns lifecycle hooks that feed the collector.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLoad: func(ctx context.Context, e *domain.LoadEvent) {
			city := string(e.City)
			c.records.WithLabelValues(city, "loaded").Add(float64(e.Loaded))
			c.records.WithLabelValues(city, "filtered").Add(float64(e.Filtered))
			c.loadDuration.WithLabelValues(city).Observe(e.Elapsed.Seconds())
		},
		OnAggregate: func(ctx context.Context, e *domain.AggregateEvent) {
			outcome := OutcomeStats
			if e.Fallback {
				outcome = OutcomeFallback
			}
			c.aggregations.WithLabelValues(e.Aggregator, outcome).Inc()
		},
		OnRoundEnd: func(ctx context.Context, e *domain.RoundEvent) {
			result := "ok"
			if e.Err != nil {
				result = "error"
			}
			c.rounds.WithLabelValues(string(e.Filter.City), result).Inc()
		},
	}
}
