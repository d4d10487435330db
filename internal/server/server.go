// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server serves the search page, the JSON search API, the static
// assets, and the health and metrics endpoints.
package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/newsdesk/internal/controller"
	"github.com/pdiddy/newsdesk/internal/render"
	"github.com/pdiddy/newsdesk/internal/search"
	"github.com/pdiddy/newsdesk/pkg/types"
)

//go:embed static
var staticFS embed.FS

// Server holds the dependencies shared by all requests. Each request gets
// its own view and controller.
type Server struct {
	Backend search.Backend
	Journal controller.Journal
	Log     logrus.FieldLogger
	Config  types.ServerConfig
}

// New returns a server for backend. journal may be nil.
func New(cfg types.ServerConfig, backend search.Backend, journal controller.Journal, log logrus.FieldLogger) *Server {
	return &Server{
		Backend: backend,
		Journal: journal,
		Log:     log,
		Config:  cfg,
	}
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handlePage)

	var api http.Handler = http.HandlerFunc(s.handleAPISearch)
	if len(s.Config.AllowedOrigins) > 0 {
		api = cors.New(cors.Options{
			AllowedOrigins: s.Config.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet},
		}).Handler(api)
	}
	mux.Handle("/api/search", api)

	static, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	var h http.Handler = mux
	h = securityHeaders(h)
	h = instrument(h)
	h = logRequests(s.Log)(h)
	h = recoverPanics(s.Log)(h)
	h = requestID(h)
	return h
}

// Run listens on the configured address and serves until ctx is done,
// then shuts down within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Config.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.Config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.Log.WithField("addr", ln.Addr().String()).Info("server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.Log.Info("server shutting down")

		timeout := s.Config.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (s *Server) controllerFor(r *http.Request, view controller.View) *controller.Controller {
	opts := []controller.Option{
		controller.WithLogger(s.Log.WithField("request_id", RequestIDFromContext(r.Context()))),
	}
	if s.Journal != nil {
		opts = append(opts, controller.WithJournal(s.Journal))
	}
	return controller.New(s.Backend, view, opts...)
}

// handlePage runs the startup search when the page is opened without a
// query string and a form submission otherwise. Search failures render
// into the status region with status 200.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	view := render.NewPageView()
	c := s.controllerFor(r, view)

	if q := r.URL.Query(); len(q) == 0 {
		_ = c.Start(r.Context())
	} else {
		view.Query = q.Get("q")
		view.Language = valueOr(q.Get("language"), search.DefaultLanguage)
		view.SortBy = valueOr(q.Get("sortBy"), search.DefaultSort)
		_ = c.SubmitSearch(r.Context(), view.Query, view.Language, view.SortBy)
	}

	var buf bytes.Buffer
	if err := render.WritePage(&buf, view); err != nil {
		s.Log.WithError(err).Error("rendering page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Status  string         `json:"status"`
	Results render.Results `json:"results"`
}

func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view := render.NewPageView()
	q := r.URL.Query()
	_ = s.controllerFor(r, view).SubmitSearch(r.Context(),
		q.Get("q"),
		valueOr(q.Get("language"), search.DefaultLanguage),
		valueOr(q.Get("sortBy"), search.DefaultSort),
	)

	writeJSON(w, http.StatusOK, SearchResponse{Status: view.Status, Results: view.Results})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
