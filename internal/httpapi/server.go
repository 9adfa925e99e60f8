// Package httpapi is the HTTP layer: routing, request parsing, status codes.
// Business rules live in internal/task; this package only translates.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wahek/task-list/internal/observability/jsonlog"
	"github.com/wahek/task-list/internal/task"
)

// Pinger reports whether the backing store is reachable; used by /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	svc    *task.Service
	store  Pinger
	log    *jsonlog.Logger
	router chi.Router
}

func NewServer(svc *task.Service, store Pinger, log *jsonlog.Logger) *Server {
	s := &Server{svc: svc, store: store, log: log}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogging(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(requestTimeout(5 * time.Second))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1/tasks", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Get("/completed", s.handleListCompleted)
		r.Get("/search", s.handleSearch)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Patch("/", s.handlePatch)
			r.Put("/", s.handleReplace)
			r.Delete("/", s.handleDelete)
			r.Patch("/completed", s.handleToggleCompleted)
		})
	})

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
