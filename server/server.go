// Package server exposes a road network over a small JSON HTTP API:
// shortest routes, live traffic updates, what-if routes and reachability.
//
// core.Graph is not safe for concurrent use, so the server owns the graph
// and serializes access with a sync.RWMutex: route queries share the read
// lock, traffic updates and network reloads take the write lock.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/roadtime/core"
	"github.com/katalvlaran/roadtime/logging"
	"github.com/katalvlaran/roadtime/network"
)

// ShutdownTimeout bounds how long Start waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server serves one live road network.
type Server struct {
	mu     sync.RWMutex
	graph  *core.Graph
	name   string
	router *mux.Router
}

// NewServer creates a server around g. The server takes ownership of g;
// callers must not mutate it afterwards.
func NewServer(g *core.Graph, name string) *Server {
	s := &Server{
		graph:  g,
		name:   name,
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/places", s.handlePlaces).Methods(http.MethodGet)
	s.router.HandleFunc("/api/route", s.handleRoute).Methods(http.MethodGet)
	s.router.HandleFunc("/api/route/whatif", s.handleWhatIf).Methods(http.MethodPost)
	s.router.HandleFunc("/api/traffic", s.handleTraffic).Methods(http.MethodPost)
	s.router.HandleFunc("/api/reachable", s.handleReachable).Methods(http.MethodGet)
}

// Handler returns the router wrapped in the request-ID logging middleware.
func (s *Server) Handler() http.Handler {
	return logging.RequestIDMiddleware(s.router)
}

// ReplaceGraph swaps in a new network, discarding traffic applied to the
// old one.
func (s *Server) ReplaceGraph(g *core.Graph, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph = g
	s.name = name
}

// Follow replaces the graph with every network received from updates until
// the channel is closed. Networks that fail to build are logged and skipped.
func (s *Server) Follow(updates <-chan network.Network) {
	for n := range updates {
		g, err := n.Graph()
		if err != nil {
			logging.Warn("skipping network update", "name", n.Name, "error", err)
			continue
		}
		s.ReplaceGraph(g, n.Name)
		logging.Info("network replaced", "name", n.Name, "places", g.VertexCount(), "roads", g.EdgeCount())
	}
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("starting web server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		logging.Info("shutting down web server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}
