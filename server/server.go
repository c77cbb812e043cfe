package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/renproject/checkdigit/bch"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests once its
// context is cancelled.
const ShutdownTimeout = 10 * time.Second

// Config configures the HTTP service.
type Config struct {
	Listen      string
	ReadTimeout time.Duration
	Metrics     bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Listen:      ":8080",
		ReadTimeout: 5 * time.Second,
		Metrics:     true,
	}
}

// NewRouter builds the router for the handler. When reg is not nil the
// registry is exposed on /metrics.
func NewRouter(h *Handler, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	h.Register(r)
	if reg != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	return r
}

// Run serves the check-digit endpoints until the context is cancelled, then
// shuts the server down gracefully.
func Run(ctx context.Context, cfg Config, codec bch.Codec, logger *log.Logger) error {
	var (
		reg     *prometheus.Registry
		metrics *Metrics
	)
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		metrics = NewMetrics(reg)
	}

	srv := &http.Server{
		Addr:        cfg.Listen,
		Handler:     NewRouter(NewHandler(codec, logger, metrics), reg),
		ReadTimeout: cfg.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Listen, "metrics", cfg.Metrics)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serving on %v: %w", cfg.Listen, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
