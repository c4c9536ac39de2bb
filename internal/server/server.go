// Package server exposes a single MRU list over HTTP so the CLI and a host
// application can share one live list.
package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lazypower/filemru/internal/mru"
)

// Server is the filemru HTTP API server. The list itself is single-threaded;
// the server's mutex is the external serialization its contract requires.
type Server struct {
	mu      sync.Mutex
	list    *mru.List
	router  chi.Router
	version string
	started time.Time
}

// New creates a new Server around the given list and version string.
func New(list *mru.List, version string) *Server {
	s := &Server{
		list:    list,
		version: version,
		started: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/recent", s.handleListRecent)
		r.Post("/recent", s.handleAddRecent)
		r.Delete("/recent", s.handleClearRecent)

		r.Get("/last-opened", s.handleGetLastOpened)
		r.Put("/last-opened", s.handleSetLastOpened)
	})

	r.NotFound(staticHandler())

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	entries := s.list.Len()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"entries": entries,
	})
}
