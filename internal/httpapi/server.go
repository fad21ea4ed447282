// Package httpapi exposes saltuser's role and permission checks as a
// small read-only HTTP API for the Web Manager and sibling services.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/saltastro/saltuser/pkg/types"
)

// Server routes permission queries to an attached store.
type Server struct {
	store  types.Store
	log    *zap.Logger
	router chi.Router
}

// NewServer creates a Server over the given store. The store must be
// attached; the server never attaches or detaches it.
func NewServer(store types.Store, log *zap.Logger) *Server {
	s := &Server{
		store: store,
		log:   log,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/", s.handleGetUser)
			r.Get("/roles", s.handleGetRoles)
			r.Get("/permissions/proposals/{proposalCode}", s.handleProposalPermissions)
			r.Get("/permissions/blocks/{blockID}", s.handleBlockPermissions)
		})
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// writeJSON writes v as a JSON response with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", zap.Error(err))
	}
}

// writeError writes a JSON error body with the given status code.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
