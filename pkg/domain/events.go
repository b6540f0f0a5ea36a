package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRoundStart EventType = "round_start"
	EventLoad       EventType = "load"
	EventAggregate  EventType = "aggregate"
	EventRoundEnd   EventType = "round_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// RoundEvent marks the start or end of one load/filter/aggregate round.
type RoundEvent struct {
	EventBase
	Filter FilterSpec `json:"filter"`
	Err    error      `json:"-"`
}

// LoadEvent reports how many trips were loaded and how many survived filtering.
type LoadEvent struct {
	EventBase
	City     City          `json:"city"`
	Loaded   int           `json:"loaded"`
	Filtered int           `json:"filtered"`
	Elapsed  time.Duration `json:"elapsed"`
}

// AggregateEvent reports the outcome of a single aggregator.
type AggregateEvent struct {
	EventBase
	Aggregator string        `json:"aggregator"`
	Fallback   bool          `json:"fallback"`
	Err        error         `json:"-"`
	Elapsed    time.Duration `json:"elapsed"`
}

// LifecycleHooks defines callbacks for round observability.
type LifecycleHooks struct {
	OnRoundStart func(context.Context, *RoundEvent)
	OnLoad       func(context.Context, *LoadEvent)
	OnAggregate  func(context.Context, *AggregateEvent)
	OnRoundEnd   func(context.Context, *RoundEvent)
}

// ChainHooks combines several hook sets; callbacks run in argument order.
func ChainHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnRoundStart: func(ctx context.Context, e *RoundEvent) {
			for _, h := range hooks {
				if h.OnRoundStart != nil {
					h.OnRoundStart(ctx, e)
				}
			}
		},
		OnLoad: func(ctx context.Context, e *LoadEvent) {
			for _, h := range hooks {
				if h.OnLoad != nil {
					h.OnLoad(ctx, e)
				}
			}
		},
		OnAggregate: func(ctx context.Context, e *AggregateEvent) {
			for _, h := range hooks {
				if h.OnAggregate != nil {
					h.OnAggregate(ctx, e)
				}
			}
		},
		OnRoundEnd: func(ctx context.Context, e *RoundEvent) {
			for _, h := range hooks {
				if h.OnRoundEnd != nil {
					h.OnRoundEnd(ctx, e)
				}
			}
		},
	}
}
