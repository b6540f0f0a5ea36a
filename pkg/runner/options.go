package runner

import (
	"log/slog"
)

// Option defines a functional option for configuring the Session.
type Option func(*Session)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(s *Session) {
		s.Handler = handler
	}
}

// WithPhaseHook registers a callback fired on every phase change.
func WithPhaseHook(fn func(from, to Phase)) Option {
	return func(s *Session) {
		s.onPhase = fn
	}
}
