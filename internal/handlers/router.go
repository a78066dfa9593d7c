package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the service router. CORS and metrics are wired by the
// caller so the route table stays testable on its own.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/scenes", h.ListScenes)
		r.Post("/insights", h.ComputeAllScenes)
		r.Post("/insights/{sceneID}", h.ComputeScene)
	})

	return r
}
