package cli

import (
	"context"

	"github.com/aretw0/bikeshare/internal/presentation/tui"
	"github.com/aretw0/bikeshare/pkg/runner"
)

// RunSession executes one interactive session until the user stops or the input ends.
func RunSession(opts RunOptions) error {
	logger := createLogger(opts.Debug)
	out := opts.stdout()

	collector, stopMetrics, err := startMetrics(opts, logger)
	if err != nil {
		return err
	}
	defer stopMetrics()

	engine, err := createEngine(opts, logger, collector)
	if err != nil {
		return err
	}

	if !opts.NoBanner && isTerminal(out) {
		tui.PrintBanner(out)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	session := runner.NewSession(engine,
		runner.WithLogger(logger),
		runner.WithInputHandler(createTextHandler(opts, logger)),
	)

	runErr := session.Run(sigCtx)
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}
	logger.Info("session ended", "rounds", session.Rounds(), "err", runErr)

	logCompletion(out, runErr, sigCtx.Signal())
	return handleExecutionError(runErr)
}
