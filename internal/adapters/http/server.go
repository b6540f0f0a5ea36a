// Package http exposes the explorer's metrics over HTTP.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ShutdownTimeout bounds how long outstanding scrapes may take once the session ends.
const ShutdownTimeout = 5 * time.Second

// NewHandler creates the HTTP handler serving /metrics and /healthz.
func NewHandler(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

// Server runs the metrics handler in the background for the lifetime of a session.
type Server struct {
	srv    *http.Server
	ln     net.Listener
	logger *slog.Logger
	done   chan error
}

// Start listens on addr and serves handler until Shutdown is called.
func Start(addr string, handler http.Handler, logger *slog.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		srv:    &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second},
		ln:     ln,
		logger: logger,
		done:   make(chan error, 1),
	}
	go func() {
		logger.Info("metrics server listening", "addr", ln.Addr().String())
		err := s.srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.done <- err
	}()
	return s, nil
}

// Addr returns the address the server is bound to.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown stops the server, giving in-flight requests ShutdownTimeout to finish.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("graceful shutdown did not complete", "timeout", ShutdownTimeout, "error", err)
		if cerr := s.srv.Close(); cerr != nil {
			return cerr
		}
	}
	return <-s.done
}
