package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/oniani/pt/internal/dictionary"
	"github.com/oniani/pt/internal/prefixtree"
)

// Server represents the HTTP API server
type Server struct {
	dict   *dictionary.Service
	server *http.Server
	addr   string
}

// NewServer creates a new API server over a dictionary service
func NewServer(addr string, dict *dictionary.Service) *Server {
	s := &Server{
		dict: dict,
		addr: addr,
	}

	r := mux.NewRouter()

	// Add request logging middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("Received request")
			next.ServeHTTP(w, r)
		})
	})

	// Word operations
	r.HandleFunc("/words", s.listWords).Methods("GET")
	r.HandleFunc("/words", s.clearWords).Methods("DELETE")
	r.HandleFunc("/words/{word}", s.putWord).Methods("PUT")
	r.HandleFunc("/words/{word}", s.getWord).Methods("GET")

	// Prefix membership
	r.HandleFunc("/prefixes/{prefix}", s.getPrefix).Methods("GET")

	// Introspection
	r.HandleFunc("/stats", s.getStats).Methods("GET")

	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the address the server is configured to listen on
func (s *Server) Addr() string {
	return s.addr
}

// Start starts the HTTP server and blocks until it is shut down
func (s *Server) Start() error {
	log.Info().Str("addr", s.addr).Msg("Server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// Helper functions for HTTP responses
func (s *Server) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respond(w, status, map[string]string{"error": err.Error()})
}

// HTTP Handlers

// putWord handles PUT /words/{word} - insert a word
func (s *Server) putWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	if err := s.dict.AddWord(word); err != nil {
		if errors.Is(err, prefixtree.ErrInvalidCharacter) {
			s.respondError(w, http.StatusBadRequest, err)
			return
		}
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]string{"word": word})
}

// getWord handles GET /words/{word} - exact membership
func (s *Server) getWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	if !s.dict.HasWord(word) {
		s.respondError(w, http.StatusNotFound, fmt.Errorf("word not found"))
		return
	}

	s.respond(w, http.StatusOK, map[string]interface{}{
		"word":  word,
		"found": true,
	})
}

// listWords handles GET /words?prefix=p - enumerate stored words
func (s *Server) listWords(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")

	words := s.dict.WordsWithPrefix(prefix)

	s.respond(w, http.StatusOK, map[string]interface{}{
		"prefix": prefix,
		"count":  len(words),
		"words":  words,
	})
}

// getPrefix handles GET /prefixes/{prefix} - prefix membership
func (s *Server) getPrefix(w http.ResponseWriter, r *http.Request) {
	prefix := mux.Vars(r)["prefix"]

	s.respond(w, http.StatusOK, map[string]interface{}{
		"prefix": prefix,
		"found":  s.dict.HasPrefix(prefix),
	})
}

// getStats handles GET /stats - dictionary introspection
func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, s.dict.Stats())
}

// clearWords handles DELETE /words - discard every stored word
func (s *Server) clearWords(w http.ResponseWriter, r *http.Request) {
	s.dict.Clear()
	w.WriteHeader(http.StatusNoContent)
}
