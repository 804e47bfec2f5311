// Package handler implements the HTTP handlers for the WhatToEat API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, dish.go, roll.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/whattoeat/internal/domain"
	"github.com/pkordes/whattoeat/internal/events"
)

// CatalogServicer defines the catalog operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the service or repo layers.
type CatalogServicer interface {
	Add(d domain.Dish) domain.Dish
	Get(id uuid.UUID) (domain.Dish, error)
	Replace(d domain.Dish) (domain.Dish, error)
	RemoveAt(i int) bool
	RemoveByID(id uuid.UUID) error
	MatchingPaged(f domain.Filter, p domain.PaginationParams) ([]domain.Dish, int)
	Tags() []string
	Roll(f domain.Filter) (domain.Dish, bool)
	History(limit int) []domain.Dish
	ClearHistory()
}

// ExportServicer produces the flat catalog export.
type ExportServicer interface {
	Export() []domain.ExportRow
}

// EventSubscriber delivers catalog change events. *events.Broker satisfies it.
type EventSubscriber interface {
	Subscribe(h events.Handler) (unsubscribe func())
}

// Server holds the dependencies shared by every handler.
// Wire it in main via Routes().
type Server struct {
	catalog CatalogServicer
	export  ExportServicer
	events  EventSubscriber
}

// NewServer constructs the Server with all its dependencies.
// Pass nil for dependencies a test does not exercise.
func NewServer(catalog CatalogServicer, export ExportServicer, events EventSubscriber) *Server {
	return &Server{catalog: catalog, export: export, events: events}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes returns a router serving every API endpoint.
// Cross-cutting middleware is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/dishes", func(r chi.Router) {
		r.Get("/", s.ListDishes)
		r.Post("/", s.CreateDish)
		r.Delete("/at/{index}", s.DeleteDishAt)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetDish)
			r.Put("/", s.UpdateDish)
			r.Delete("/", s.DeleteDish)
			r.Get("/search-url", s.GetSearchURL)
			r.Get("/search", s.RedirectToSearch)
		})
	})

	r.Get("/tags", s.ListTags)
	r.Post("/roll", s.Roll)

	r.Get("/history", s.ListHistory)
	r.Delete("/history", s.ClearHistory)

	r.Get("/export", s.GetExport)
	r.Get("/events", s.StreamEvents)

	return r
}
