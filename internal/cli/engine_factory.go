package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/bikeshare"
	"github.com/aretw0/bikeshare/internal/metrics"
	"github.com/aretw0/bikeshare/pkg/dataset"
	"github.com/aretw0/bikeshare/pkg/domain"
)

// loadTable reads the city table and checks that every backing file exists.
func loadTable(opts RunOptions, logger *slog.Logger) (dataset.Table, error) {
	table, err := dataset.LoadTable(opts.ConfigPath, opts.DataDir)
	if err != nil {
		return dataset.Table{}, fmt.Errorf("error loading city table: %w", err)
	}
	logger.Debug("city table", "table", table.String())

	if err := table.Resolve(); err != nil {
		return dataset.Table{}, err
	}
	return table, nil
}

// createEngine initializes an Engine with standard CLI conventions.
// A nil collector disables metrics.
func createEngine(opts RunOptions, logger *slog.Logger, collector *metrics.Collector) (*bikeshare.Engine, error) {
	table, err := loadTable(opts, logger)
	if err != nil {
		return nil, err
	}

	var hooks []domain.LifecycleHooks
	if opts.Debug {
		hooks = append(hooks, createDebugHooks(logger))
	}
	if collector != nil {
		hooks = append(hooks, collector.Hooks())
	}

	return bikeshare.New(table,
		bikeshare.WithLogger(logger),
		bikeshare.WithLifecycleHooks(domain.ChainHooks(hooks...)),
	), nil
}
