package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/kumarlokesh/sysd/exercises/compressed-trie/internal/config"
	"github.com/kumarlokesh/sysd/exercises/compressed-trie/internal/trie"
)

// Server exposes a single trie over HTTP.
// The trie itself is not safe for concurrent use, so every handler goes
// through mu: inserts and replacements take it exclusively, queries shared.
type Server struct {
	mu   sync.RWMutex
	dict *trie.Trie

	logger   zerolog.Logger
	metrics  *metrics
	validate *validator.Validate
	server   *http.Server

	listenerMu sync.Mutex
	listener   net.Listener
}

// NewServer creates a new API server serving dict
func NewServer(cfg config.ServerConfig, dict *trie.Trie, logger zerolog.Logger) *Server {
	if dict == nil {
		dict = trie.New()
	}

	s := &Server{
		dict:     dict,
		logger:   logger.With().Str("component", "api").Logger(),
		metrics:  newMetrics(),
		validate: validator.New(),
	}
	s.metrics.observeWords(func() float64 {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return float64(s.dict.Len())
	})

	r := mux.NewRouter()
	r.Use(s.logRequests, s.instrument)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.HandleFunc("/words", s.listWords).Methods(http.MethodGet)
	r.HandleFunc("/words/{word}", s.putWord).Methods(http.MethodPut)
	r.HandleFunc("/words/{word}", s.getWord).Methods(http.MethodGet)
	r.HandleFunc("/prefixes/{prefix}", s.getPrefix).Methods(http.MethodGet)

	r.HandleFunc("/trie", s.getTrie).Methods(http.MethodGet)
	r.HandleFunc("/trie", s.replaceTrie).Methods(http.MethodPost)

	r.HandleFunc("/subsetsum", s.subsetSum).Methods(http.MethodPost)

	s.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the address the server is listening on, or the configured
// address before Start is called
func (s *Server) Addr() string {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

// Start listens on the configured address and serves until Shutdown is called
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	s.listenerMu.Lock()
	s.listener = listener
	s.listenerMu.Unlock()

	s.logger.Info().Str("addr", listener.Addr().String()).Msg("Server listening")
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down server")
	start := time.Now()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	s.logger.Info().Dur("took", time.Since(start)).Msg("Server stopped")
	return nil
}
