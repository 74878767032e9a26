package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the analytics endpoints on the API router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/investors", h.HandleGetInvestors)

	r.Route("/portfolio", func(r chi.Router) {
		r.Get("/statistics", h.HandleGetStatistics)
		r.Get("/risk", h.HandleGetRisk)
		r.Get("/concentration", h.HandleGetConcentration)
	})

	r.Get("/insights", h.HandleGetInsights)
}
