package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the voting endpoints on the API router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/voting", func(r chi.Router) {
		r.Get("/analysis", h.HandleGetAnalysis)
		r.Get("/coalition", h.HandleGetCoalition)
	})
}
