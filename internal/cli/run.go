package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	httpadapter "github.com/aretw0/bikeshare/internal/adapters/http"
	"github.com/aretw0/bikeshare/internal/metrics"
	"github.com/aretw0/bikeshare/internal/presentation/tui"
	"github.com/aretw0/bikeshare/pkg/runner"
)

// RunOptions contains all the configuration shared by the commands.
type RunOptions struct {
	DataDir     string
	ConfigPath  string
	Debug       bool
	Pretty      bool
	MetricsAddr string
	NoBanner    bool

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

func (o RunOptions) stdin() io.Reader {
	if o.Stdin != nil {
		return o.Stdin
	}
	return os.Stdin
}

func (o RunOptions) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

// startMetrics serves the collector on opts.MetricsAddr.
// It returns a nil collector and a no-op stop when no address is set.
func startMetrics(opts RunOptions, logger *slog.Logger) (*metrics.Collector, func(), error) {
	if opts.MetricsAddr == "" {
		return nil, func() {}, nil
	}

	collector := metrics.New()
	srv, err := httpadapter.Start(opts.MetricsAddr, httpadapter.NewHandler(collector.Registry()), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("error starting metrics server: %w", err)
	}
	stop := func() {
		if err := srv.Shutdown(); err != nil {
			logger.Warn("metrics server shutdown failed", "error", err)
		}
	}
	return collector, stop, nil
}

// createTextHandler builds the console handler, rendering reports with glamour when pretty.
func createTextHandler(opts RunOptions, logger *slog.Logger) *runner.TextHandler {
	var handlerOpts []runner.TextHandlerOption
	if opts.Pretty {
		render, err := tui.NewRenderer()
		if err != nil {
			logger.Warn("markdown renderer unavailable, using plain text", "error", err)
		} else {
			handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(render))
		}
	}
	return runner.NewTextHandler(opts.stdin(), opts.stdout(), handlerOpts...)
}
