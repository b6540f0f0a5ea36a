package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/bikeshare/internal/logging"
	"github.com/aretw0/bikeshare/pkg/domain"
	"golang.org/x/term"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the statistics on Stdout).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRoundStart: func(ctx context.Context, e *domain.RoundEvent) {
			logger.Debug("Round Start", "filter", e.Filter.String())
		},
		OnLoad: func(ctx context.Context, e *domain.LoadEvent) {
			logger.Debug("Dataset Loaded", "city", e.City, "loaded", e.Loaded, "filtered", e.Filtered, "elapsed", e.Elapsed)
		},
		OnAggregate: func(ctx context.Context, e *domain.AggregateEvent) {
			if e.Fallback {
				logger.Debug("Aggregate (Fallback)", "aggregator", e.Aggregator, "err", e.Err)
			} else {
				logger.Debug("Aggregate", "aggregator", e.Aggregator, "elapsed", e.Elapsed)
			}
		},
		OnRoundEnd: func(ctx context.Context, e *domain.RoundEvent) {
			if e.Err != nil {
				logger.Debug("Round Failed", "filter", e.Filter.String(), "err", e.Err)
				return
			}
			logger.Debug("Round End", "filter", e.Filter.String())
		},
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func isInterrupted(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

func logCompletion(w io.Writer, err error, sig os.Signal) {
	if !isInterrupted(err) {
		return
	}
	switch {
	case sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted.")
	case sig != nil:
		fmt.Fprintln(w)
		printSystemMessage(w, "Terminated.")
	}
}
