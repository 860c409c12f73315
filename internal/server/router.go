// Package server exposes reports and spots as JSON over HTTP.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ngmaloney/jiai-terminal/internal/config"
	"github.com/ngmaloney/jiai-terminal/internal/models"
	"github.com/ngmaloney/jiai-terminal/internal/report"
)

// ReportBuilder builds one report per request
type ReportBuilder interface {
	Build(ctx context.Context, q report.Query) (*report.Report, error)
}

// SpotLister lists the spot registry
type SpotLister interface {
	ListSpots(ctx context.Context) ([]models.Spot, error)
}

// Server serves the JSON endpoints
type Server struct {
	builder  ReportBuilder
	spots    SpotLister
	defaults config.DefaultsConfig
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// New creates a server. spots may be nil, in which case /api/spots returns an empty list.
func New(builder ReportBuilder, spots SpotLister, cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		builder:  builder,
		spots:    spots,
		defaults: cfg.Defaults,
		location: cfg.GetLocation(),
		logger:   logger,
		now:      time.Now,
	}
}

// NewRouter registers the routes
func (s *Server) NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/report", s.reportHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/spots", s.spotsHandler).Methods(http.MethodGet)

	return r
}

// Handler wraps the router with an access log written to w
func (s *Server) Handler(w io.Writer) http.Handler {
	return handlers.LoggingHandler(w, s.NewRouter())
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string, accessLog io.Writer) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(accessLog),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server_listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("server_shutdown")
		return srv.Shutdown(shutdownCtx)
	}
}
