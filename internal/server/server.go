// Package server exposes the pipeline over HTTP: a client posts a
// transaction-log CSV and receives the report tables as JSON. The
// server holds no state between requests; every request is one
// stateless pipeline run.
package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pnlfolio/pnlfolio/internal/importer"
	"github.com/pnlfolio/pnlfolio/internal/report"
)

// Server handles report-generation requests.
type Server struct {
	registry  *importer.Registry
	opts      report.Options
	log       zerolog.Logger
	maxUpload int64
}

// New creates a Server.
func New(registry *importer.Registry, opts report.Options, log zerolog.Logger) *Server {
	return &Server{registry: registry, opts: opts, log: log, maxUpload: maxUploadBytes}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Handle("/api/report", s.instrument("report", s.handleReport)).Methods(http.MethodPost)
	r.Handle("/healthz", s.instrument("healthz", s.handleHealthz)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

// instrument wraps a handler with request logging and latency
// metrics.
func (s *Server) instrument(route string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		elapsed := time.Since(start)
		requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
		s.log.Debug().
			Str("route", route).
			Str("method", r.Method).
			Dur("elapsed", elapsed).
			Msg("request handled")
	})
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	s.log.Info().Str("addr", addr).Msg("listening")
	return srv.ListenAndServe()
}
