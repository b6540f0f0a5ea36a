package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainHooks(t *testing.T) {
	var calls []string
	first := LifecycleHooks{
		OnRoundStart: func(ctx context.Context, e *RoundEvent) { calls = append(calls, "first:start") },
		OnAggregate:  func(ctx context.Context, e *AggregateEvent) { calls = append(calls, "first:"+e.Aggregator) },
	}
	second := LifecycleHooks{
		OnRoundStart: func(ctx context.Context, e *RoundEvent) { calls = append(calls, "second:start") },
	}

	chained := ChainHooks(first, second)
	ctx := context.Background()
	chained.OnRoundStart(ctx, &RoundEvent{})
	chained.OnAggregate(ctx, &AggregateEvent{Aggregator: "time"})
	chained.OnLoad(ctx, &LoadEvent{})
	chained.OnRoundEnd(ctx, &RoundEvent{})

	assert.Equal(t, []string{"first:start", "second:start", "first:time"}, calls)
}
