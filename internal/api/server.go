// Package api exposes the read-only layout surface over HTTP.
//
// The server wraps a universe.Store and a pipeline.Runner: clients fetch the
// normalized content tree, request assembled scenes with layout parameters,
// and validate candidate trees before committing them elsewhere.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/horizonlabs/horizon/pkg/cache"
	"github.com/horizonlabs/horizon/pkg/pipeline"
	"github.com/horizonlabs/horizon/pkg/scene"
	"github.com/horizonlabs/horizon/pkg/universe"
)

// Server serves the layout API.
type Server struct {
	store  universe.Store
	source string
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// Config configures a Server.
type Config struct {
	// Store provides the content tree.
	Store universe.Store

	// Cache backs the pipeline caches. Nil disables caching.
	Cache cache.Cache

	// Keyer scopes cache keys. Nil uses the default keyer; deployments
	// sharing one Redis instance across universes should pass a scoped one.
	Keyer cache.Keyer

	// Source is the store's stable identity. When set, loaded trees are
	// cached under it so remote stores are not hit on every request.
	Source string

	// Logger defaults to log.Default when nil.
	Logger *log.Logger
}

// NewServer creates a server over the configured store and cache.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	s := &Server{
		store:  cfg.Store,
		source: cfg.Source,
		runner: pipeline.NewRunner(cfg.Cache, cfg.Keyer, cfg.Logger),
		logger: cfg.Logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the runner's cache.
func (s *Server) Close() error {
	return s.runner.Close()
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/universe", s.handleUniverse)
		r.Get("/scene", s.handleScene)
		r.Post("/validate", s.handleValidate)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUniverse(w http.ResponseWriter, r *http.Request) {
	u, err := s.runner.Load(r.Context(), pipeline.Options{Store: s.store, Source: s.source})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// sceneResponse wraps the assembled scene with its tree hash so clients can
// detect content changes without re-fetching the tree.
type sceneResponse struct {
	TreeHash string      `json:"tree_hash"`
	Scene    scene.Scene `json:"scene"`
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.Options{Store: s.store, Source: s.source}

	var err error
	if opts.GalaxySpacing, err = floatParam(r, "spacing"); err != nil {
		s.writeBadRequest(w, "invalid spacing parameter")
		return
	}
	if opts.ViewportRadius, err = floatParam(r, "viewport"); err != nil {
		s.writeBadRequest(w, "invalid viewport parameter")
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sceneResponse{
		TreeHash: result.TreeHash,
		Scene:    result.Scene,
	})
}

// validateResponse lists the collected validation errors. An empty list
// means the tree is valid.
type validateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	u, err := universe.Read(http.MaxBytesReader(w, r.Body, maxValidateBody))
	if err != nil {
		s.writeBadRequest(w, "invalid universe document: "+err.Error())
		return
	}

	errs := universe.Validate(u)
	if errs == nil {
		errs = []string{}
	}
	writeJSON(w, http.StatusOK, validateResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
	})
}

// maxValidateBody caps validate payloads at 4 MiB.
const maxValidateBody = 4 << 20

func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, universe.ErrNotFound) {
		status = http.StatusNotFound
	}
	s.logger.Error("request failed",
		"request_id", RequestID(r.Context()),
		"path", r.URL.Path,
		"err", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe runs the server on addr until the context is canceled,
// then drains in-flight requests with a bounded graceful shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", "addr", addr)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}
