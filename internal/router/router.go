// Package router sets up all HTTP routes and middleware chains for the
// PageCraft service. It organizes routes into the JSON admin API and the
// public render surface.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pagecraft/internal/handlers"
	"pagecraft/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(templates *handlers.Templates, pages *handlers.Pages, customers *handlers.Customers, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	// Admin JSON API.
	r.Route("/api", func(r chi.Router) {
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", templates.List)
			r.Post("/", templates.Create)
			r.Get("/{id}", templates.Get)
			r.Get("/{id}/variables", templates.Variables)
			r.Put("/{id}", templates.Update)
			r.Delete("/{id}", templates.Delete)
		})

		r.Route("/pages", func(r chi.Router) {
			r.Get("/", pages.List)
			r.Post("/", pages.Create)
			r.Get("/{id}", pages.Get)
			r.Put("/{id}", pages.Update)
			r.Delete("/{id}", pages.Delete)
			r.Post("/{id}/publish", pages.Publish)
			r.Post("/{id}/unpublish", pages.Unpublish)

			r.Route("/{id}/elements", func(r chi.Router) {
				r.Get("/", pages.ListElements)
				r.Put("/{key}", pages.UpsertElement)
				r.Delete("/{key}", pages.DeleteElement)
			})
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", customers.List)
			r.Post("/", customers.Create)
			r.Get("/{id}", customers.Get)
			r.Delete("/{id}", customers.Delete)
		})
	})

	// Public routes — served by the render engine through the cache.
	r.Get("/p/{slug}", public.Render)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
