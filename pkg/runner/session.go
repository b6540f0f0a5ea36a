package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/bikeshare/pkg/domain"
)

// Phase is a state of the interactive session.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhasePromptingFilters Phase = "prompting_filters"
	PhaseLoading          Phase = "loading"
	PhaseAggregating      Phase = "aggregating"
	PhasePromptingRestart Phase = "prompting_restart"
	PhaseTerminated       Phase = "terminated"
)

// Session texts.
const (
	PromptContinue = "Want more Data? (yes/no) "
	PromptCity     = "Enter your city (chicago, new york city, washington): "
	PromptMonth    = "Enter the month (all, january, february, ... , june): "
	PromptDay      = "Enter your day of week (all, monday, tuesday, ... sunday): "
	PromptRestart  = "\nWould you like to restart? Enter yes or no.\n"

	Greeting     = "Hello! Let's explore some US bikeshare data!"
	ErrCityText  = "Error, city not valid"
	ErrMonthText = "Error, month not valid"
	ErrDayText   = "Error, day not valid"
)

// Session drives the prompt, load, aggregate, restart loop.
type Session struct {
	Handler  IOHandler
	Analyzer Analyzer
	Logger   *slog.Logger

	onPhase func(from, to Phase)
	phase   Phase
	rounds  int
}

// NewSession creates a Session over an analyzer, reading from Stdin and writing to Stdout
// unless an input handler is configured.
func NewSession(analyzer Analyzer, opts ...Option) *Session {
	s := &Session{
		Analyzer: analyzer,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		phase:    PhaseIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Handler == nil {
		s.Handler = NewTextHandler(nil, nil)
	}
	return s
}

// Phase returns the current state of the session.
func (s *Session) Phase() Phase {
	return s.phase
}

// Rounds returns the number of completed rounds.
func (s *Session) Rounds() int {
	return s.rounds
}

// Run executes the session until the user declines to continue or the input ends.
// An exhausted input terminates cleanly; data source failures are returned for the caller to report.
func (s *Session) Run(ctx context.Context) (err error) {
	defer func() {
		s.setPhase(PhaseTerminated)
		if errors.Is(err, io.EOF) {
			s.Logger.Debug("input closed, ending session", "rounds", s.rounds)
			err = nil
		}
	}()

	s.setPhase(PhaseIdle)
	more, err := s.confirm(ctx, PromptContinue)
	if err != nil || !more {
		return err
	}

	for {
		spec, err := s.PromptFilters(ctx)
		if err != nil {
			return err
		}

		if err := s.RunRound(ctx, spec); err != nil {
			s.Logger.Debug("round failed", "filter", spec.String(), "err", err)
			return err
		}

		s.setPhase(PhasePromptingRestart)
		again, err := s.confirm(ctx, PromptRestart)
		if err != nil || !again {
			return err
		}
	}
}

// PromptFilters asks for city, month and day, re-asking each until it is valid.
func (s *Session) PromptFilters(ctx context.Context) (domain.FilterSpec, error) {
	s.setPhase(PhasePromptingFilters)
	spec := domain.FilterSpec{Month: domain.MonthAll, Day: domain.DayAll}

	if err := s.Handler.Output(ctx, Greeting); err != nil {
		return spec, err
	}

	err := s.ask(ctx, PromptCity, ErrCityText, func(in string) (err error) {
		spec.City, err = domain.ParseCity(in)
		return err
	})
	if err != nil {
		return spec, err
	}

	err = s.ask(ctx, PromptMonth, ErrMonthText, func(in string) (err error) {
		spec.Month, err = domain.ParseMonth(in)
		return err
	})
	if err != nil {
		return spec, err
	}

	err = s.ask(ctx, PromptDay, ErrDayText, func(in string) (err error) {
		spec.Day, err = domain.ParseWeekday(in)
		return err
	})
	return spec, err
}

// RunRound loads and filters the data for spec and reports every aggregator.
func (s *Session) RunRound(ctx context.Context, spec domain.FilterSpec) error {
	s.setPhase(PhaseLoading)
	results, err := s.Analyzer.Analyze(ctx, spec)
	if err != nil {
		return err
	}

	s.setPhase(PhaseAggregating)
	for _, res := range results {
		if err := s.Handler.Report(ctx, res); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
	s.rounds++
	return nil
}

// ask reads answers until parse accepts one. There is no retry limit.
func (s *Session) ask(ctx context.Context, prompt, invalid string, parse func(string) error) error {
	for {
		answer, err := s.Handler.Input(ctx, prompt)
		if err != nil {
			return err
		}
		if err := parse(answer); err != nil {
			s.Logger.Debug("rejected answer", "prompt", strings.TrimSpace(prompt), "err", err)
			if err := s.Handler.Output(ctx, invalid); err != nil {
				return err
			}
			continue
		}
		return nil
	}
}

// confirm reports whether the answer is "yes"; anything else is a no.
func (s *Session) confirm(ctx context.Context, prompt string) (bool, error) {
	answer, err := s.Handler.Input(ctx, prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	from := s.phase
	s.phase = p
	s.Logger.Debug("session phase", "from", from, "to", p)
	if s.onPhase != nil {
		s.onPhase(from, p)
	}
}
