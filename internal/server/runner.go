// Package server runs the HTTP server alongside background refresh loops.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mediateca/mediateca/internal/tv"
)

const shutdownTimeout = 30 * time.Second

// Runner manages the HTTP server and the channel refresh loop.
type Runner struct {
	srv          *http.Server
	source       *tv.Source
	refreshEvery time.Duration
	logger       *slog.Logger
}

// NewRunner creates a new runner. The channel source may be nil, or the
// refresh interval zero, to run without periodic channel refreshes.
func NewRunner(srv *http.Server, source *tv.Source, refreshEvery time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		srv:          srv,
		source:       source,
		refreshEvery: refreshEvery,
		logger:       logger,
	}
}

// Run starts all components. It blocks until the context is canceled or
// a component fails, then shuts the HTTP server down gracefully.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("server starting", "addr", r.srv.Addr)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if r.source != nil && r.refreshEvery > 0 {
		g.Go(func() error {
			return r.source.Run(ctx, r.refreshEvery)
		})
	}

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		r.logger.Info("shutting down")
		return r.srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
