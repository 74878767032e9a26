// Package handlers exposes the analytics endpoints.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jswiatek/kapital/internal/cache"
	"github.com/jswiatek/kapital/internal/modules/analytics"
	"github.com/jswiatek/kapital/internal/modules/insights"
	"github.com/jswiatek/kapital/internal/modules/investors"
)

// Handler handles analytics HTTP requests
type Handler struct {
	service *analytics.Service
	cache   *cache.Cache
	log     zerolog.Logger
}

// NewHandler creates a new analytics handler
func NewHandler(service *analytics.Service, c *cache.Cache, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		cache:   c,
		log:     log.With().Str("handler", "analytics").Logger(),
	}
}

// HandleGetInvestors handles GET /api/investors
func (h *Handler) HandleGetInvestors(w http.ResponseWriter, r *http.Request) {
	var cached []investors.InvestorSummary
	if h.cache.Get(analytics.CacheKeyInvestors, &cached) {
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	summaries, err := h.service.Investors(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.cache.Set(analytics.CacheKeyInvestors, summaries); err != nil {
		h.log.Warn().Err(err).Msg("Failed to cache investor summaries")
	}
	h.writeJSON(w, http.StatusOK, summaries)
}

// HandleGetStatistics handles GET /api/portfolio/statistics
func (h *Handler) HandleGetStatistics(w http.ResponseWriter, r *http.Request) {
	var cached analytics.PortfolioStatistics
	if h.cache.Get(analytics.CacheKeyStatistics, &cached) {
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.cache.Set(analytics.CacheKeyStatistics, stats); err != nil {
		h.log.Warn().Err(err).Msg("Failed to cache portfolio statistics")
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// HandleGetRisk handles GET /api/portfolio/risk?confidence=0.05
func (h *Handler) HandleGetRisk(w http.ResponseWriter, r *http.Request) {
	confidence := 0.0
	if raw := r.URL.Query().Get("confidence"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 || parsed >= 1 {
			h.writeError(w, http.StatusBadRequest, "confidence must be a number in (0, 1)")
			return
		}
		confidence = parsed
	}

	key := fmt.Sprintf("%s:%g", analytics.CacheKeyRisk, confidence)
	var cached analytics.RiskMetrics
	if h.cache.Get(key, &cached) {
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	metrics, err := h.service.Risk(r.Context(), confidence)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.cache.Set(key, metrics); err != nil {
		h.log.Warn().Err(err).Msg("Failed to cache risk metrics")
	}
	h.writeJSON(w, http.StatusOK, metrics)
}

// HandleGetConcentration handles GET /api/portfolio/concentration
func (h *Handler) HandleGetConcentration(w http.ResponseWriter, r *http.Request) {
	var cached analytics.ConcentrationMetrics
	if h.cache.Get(analytics.CacheKeyConcentration, &cached) {
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	metrics, err := h.service.Concentration(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.cache.Set(analytics.CacheKeyConcentration, metrics); err != nil {
		h.log.Warn().Err(err).Msg("Failed to cache concentration metrics")
	}
	h.writeJSON(w, http.StatusOK, metrics)
}

// HandleGetInsights handles GET /api/insights
func (h *Handler) HandleGetInsights(w http.ResponseWriter, r *http.Request) {
	var cached []insights.Insight
	if h.cache.Get(analytics.CacheKeyInsights, &cached) {
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	list, err := h.service.Insights(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.cache.Set(analytics.CacheKeyInsights, list); err != nil {
		h.log.Warn().Err(err).Msg("Failed to cache insights")
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
