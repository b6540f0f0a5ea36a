package runner

import (
	"context"

	"github.com/aretw0/bikeshare/pkg/domain"
	"github.com/aretw0/bikeshare/pkg/stats"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching the console for scripted input in tests or other frontends.
type IOHandler interface {
	// Output presents a line of session text (greetings, validation errors).
	Output(ctx context.Context, msg string) error

	// Report presents the outcome of one aggregator.
	Report(ctx context.Context, res stats.Result) error

	// Input shows prompt and reads one response line.
	// It returns io.EOF when the input stream is exhausted.
	Input(ctx context.Context, prompt string) (string, error)

	// SystemOutput presents a meta-message to the user (e.g. a data source failure).
	// This is distinct from session text.
	SystemOutput(ctx context.Context, msg string) error
}

// Analyzer runs one load/filter/aggregate round.
type Analyzer interface {
	Analyze(ctx context.Context, spec domain.FilterSpec) ([]stats.Result, error)
}
