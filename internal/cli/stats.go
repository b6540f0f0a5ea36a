package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/bikeshare/pkg/domain"
)

// StatsOptions selects the filter of a single non-interactive round.
type StatsOptions struct {
	RunOptions
	City  string
	Month string
	Day   string
}

// filterSpec parses the raw flag values. Empty month and day mean "all".
func (o StatsOptions) filterSpec() (domain.FilterSpec, error) {
	spec := domain.FilterSpec{Month: domain.MonthAll, Day: domain.DayAll}

	var err error
	if spec.City, err = domain.ParseCity(o.City); err != nil {
		return spec, fmt.Errorf("--city: %w", err)
	}
	if o.Month != "" {
		if spec.Month, err = domain.ParseMonth(o.Month); err != nil {
			return spec, fmt.Errorf("--month: %w", err)
		}
	}
	if o.Day != "" {
		if spec.Day, err = domain.ParseWeekday(o.Day); err != nil {
			return spec, fmt.Errorf("--day: %w", err)
		}
	}
	return spec, nil
}

// RunOnce runs a single round for the given filter and prints every statistic block.
func RunOnce(opts StatsOptions) error {
	spec, err := opts.filterSpec()
	if err != nil {
		return err
	}

	logger := createLogger(opts.Debug)

	collector, stopMetrics, err := startMetrics(opts.RunOptions, logger)
	if err != nil {
		return err
	}
	defer stopMetrics()

	engine, err := createEngine(opts.RunOptions, logger, collector)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	results, err := engine.Analyze(sigCtx, spec)
	if err != nil {
		logCompletion(opts.stdout(), err, sigCtx.Signal())
		return handleExecutionError(err)
	}

	handler := createTextHandler(opts.RunOptions, logger)
	for _, res := range results {
		if err := handler.Report(sigCtx, res); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
	return nil
}
