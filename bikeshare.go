package bikeshare

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/bikeshare/pkg/dataset"
	"github.com/aretw0/bikeshare/pkg/domain"
	"github.com/aretw0/bikeshare/pkg/filter"
	"github.com/aretw0/bikeshare/pkg/stats"
)

// Version is the release of the bikeshare explorer.
const Version = "0.3.1"

// Loader reads the full record set of a city.
type Loader interface {
	Load(ctx context.Context, city domain.City) (*domain.RecordSet, error)
}

// Engine is the high-level entry point of the library.
// It runs one round: load a city, filter it, and aggregate the result.
type Engine struct {
	loader      Loader
	aggregators []stats.Aggregator
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithAggregators replaces the default aggregators.
func WithAggregators(aggs ...stats.Aggregator) Option {
	return func(e *Engine) {
		e.aggregators = aggs
	}
}

// WithLoader injects a custom Loader, bypassing the table-backed dataset loader.
func WithLoader(l Loader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// New creates an Engine reading datasets through the given city table.
func New(table dataset.Table, opts ...Option) *Engine {
	e := &Engine{
		aggregators: stats.Default(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.loader == nil {
		e.loader = dataset.NewLoader(table, dataset.WithLogger(e.logger))
	}
	return e
}

// Load reads the full record set of a city.
func (e *Engine) Load(ctx context.Context, city domain.City) (*domain.RecordSet, error) {
	return e.loader.Load(ctx, city)
}

// Analyze loads spec.City, filters it by month and day and runs every aggregator in order.
// Loader errors abort the round; aggregator failures are reported inside their Result.
func (e *Engine) Analyze(ctx context.Context, spec domain.FilterSpec) (results []stats.Result, err error) {
	e.fireRound(ctx, e.hooks.OnRoundStart, domain.EventRoundStart, spec, nil)
	defer func() {
		e.fireRound(ctx, e.hooks.OnRoundEnd, domain.EventRoundEnd, spec, err)
	}()

	start := time.Now()
	rs, err := e.loader.Load(ctx, spec.City)
	if err != nil {
		return nil, err
	}
	filtered := filter.ApplySpec(rs, spec)

	if e.hooks.OnLoad != nil {
		e.hooks.OnLoad(ctx, &domain.LoadEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventLoad},
			City:      spec.City,
			Loaded:    rs.Len(),
			Filtered:  filtered.Len(),
			Elapsed:   time.Since(start),
		})
	}
	e.logger.Debug("records filtered", "filter", spec.String(), "loaded", rs.Len(), "kept", filtered.Len())

	results = make([]stats.Result, 0, len(e.aggregators))
	for _, agg := range e.aggregators {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		aggStart := time.Now()
		res := stats.Run(agg, filtered)
		results = append(results, res)

		if res.Fallback() {
			e.logger.Debug("aggregator fell back", "aggregator", res.Aggregator, "err", res.Err)
		}
		if e.hooks.OnAggregate != nil {
			e.hooks.OnAggregate(ctx, &domain.AggregateEvent{
				EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventAggregate},
				Aggregator: res.Aggregator,
				Fallback:   res.Fallback(),
				Err:        res.Err,
				Elapsed:    time.Since(aggStart),
			})
		}
	}
	return results, nil
}

func (e *Engine) fireRound(ctx context.Context, hook func(context.Context, *domain.RoundEvent), typ domain.EventType, spec domain.FilterSpec, err error) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.RoundEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ},
		Filter:    spec,
		Err:       err,
	})
}
