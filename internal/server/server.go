// Package server serves device palettes over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/devpalette/internal/palette"
	htmlrender "github.com/jmylchreest/devpalette/internal/render/html"
	"github.com/jmylchreest/devpalette/internal/render/jsonout"
)

// Options configures a Server.
type Options struct {
	Listen          string
	MetricsListen   string // empty serves /metrics on Listen
	ShutdownTimeout time.Duration
	Bases           []palette.BaseColour
	TemplateDir     string
	Logger          hclog.Logger
}

// Server renders palettes per request. It keeps no per-request state, so
// handlers run concurrently without locking.
type Server struct {
	opts    Options
	logger  hclog.Logger
	metrics *Metrics
	page    *htmlrender.Renderer
}

// New creates a Server.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	if len(opts.Bases) == 0 {
		opts.Bases = palette.DefaultBaseColours()
	}

	logger := opts.Logger.Named("server")
	return &Server{
		opts:    opts,
		logger:  logger,
		metrics: NewMetrics(),
		page:    htmlrender.New().WithTemplateDir(opts.TemplateDir).WithLogger(logger),
	}
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /api/palette", s.handleAPI)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.opts.MetricsListen == "" {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	return s.logRequests(mux)
}

// Run listens on the configured addresses and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Listen, err)
	}

	var metricsLn net.Listener
	if s.opts.MetricsListen != "" {
		metricsLn, err = net.Listen("tcp", s.opts.MetricsListen)
		if err != nil {
			ln.Close()
			return fmt.Errorf("failed to listen on %s: %w", s.opts.MetricsListen, err)
		}
	}

	return s.Serve(ctx, ln, metricsLn)
}

// Serve serves on ln (and metricsLn when not nil) until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln, metricsLn net.Listener) error {
	servers := []*http.Server{{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}}
	listeners := []net.Listener{ln}

	if metricsLn != nil {
		mux := http.NewServeMux()
		mux.Handle("GET /metrics", s.metrics.Handler())
		servers = append(servers, &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second})
		listeners = append(listeners, metricsLn)
	}

	errCh := make(chan error, len(servers))
	for i, srv := range servers {
		s.logger.Info("listening", "addr", listeners[i].Addr().String())
		go func() {
			if err := srv.Serve(listeners[i]); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
		s.logger.Error("server error", "error", serveErr)
	}

	s.logger.Info("shutting down", "timeout", s.opts.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil && serveErr == nil {
			serveErr = fmt.Errorf("failed to shut down: %w", err)
		}
	}
	return serveErr
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	status := http.StatusOK
	opts := htmlrender.PageOptions{Interactive: true}

	params, err := palette.ParseParams(q.Get("count"), q.Get("method"))
	if err != nil {
		s.metrics.ErrorsTotal.WithLabelValues("invalid_params").Inc()
		s.logger.Debug("invalid parameters", "error", err)
		opts.Banner = err.Error()
		status = http.StatusBadRequest
		params = palette.DefaultParams()
	}

	result := s.build(params)
	page, err := s.page.Page(result, opts)
	if err != nil {
		s.metrics.ErrorsTotal.WithLabelValues("render").Inc()
		s.logger.Error("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	s.observe(params, "html", start)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(page)
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	params, err := palette.ParseParams(q.Get("count"), q.Get("method"))
	if err != nil {
		s.metrics.ErrorsTotal.WithLabelValues("invalid_params").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	doc := jsonout.NewDocument(s.build(params))
	s.observe(params, "json", start)
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// build generates the palette and counts failed sections.
func (s *Server) build(params palette.Params) *palette.Result {
	result := palette.Build(s.opts.Bases, params)
	for _, failed := range result.Failed() {
		s.metrics.ErrorsTotal.WithLabelValues("section").Inc()
		s.logger.Warn("section failed", "device", failed.DeviceType, "base", failed.Base, "error", failed.Err)
	}
	return result
}

func (s *Server) observe(params palette.Params, format string, start time.Time) {
	s.metrics.RendersTotal.WithLabelValues(params.Method.String(), format).Inc()
	s.metrics.RenderDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
