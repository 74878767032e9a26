// Package handlers exposes the voting analysis endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jswiatek/kapital/internal/cache"
	"github.com/jswiatek/kapital/internal/modules/analytics"
	"github.com/jswiatek/kapital/internal/modules/voting"
)

// Handler handles voting HTTP requests
type Handler struct {
	service *analytics.Service
	cache   *cache.Cache
	log     zerolog.Logger
}

// NewHandler creates a new voting handler
func NewHandler(service *analytics.Service, c *cache.Cache, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		cache:   c,
		log:     log.With().Str("handler", "voting").Logger(),
	}
}

// HandleGetAnalysis handles GET /api/voting/analysis
func (h *Handler) HandleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	var cached voting.Analysis
	if h.cache.Get(analytics.CacheKeyVoting, &cached) {
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	analysis, err := h.service.Voting(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.cache.Set(analytics.CacheKeyVoting, analysis); err != nil {
		h.log.Warn().Err(err).Msg("Failed to cache voting analysis")
	}
	h.writeJSON(w, http.StatusOK, analysis)
}

// HandleGetCoalition handles GET /api/voting/coalition?threshold=51
func (h *Handler) HandleGetCoalition(w http.ResponseWriter, r *http.Request) {
	threshold := 0.0
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "threshold must be a number")
			return
		}
		threshold = parsed
	}

	key := fmt.Sprintf("%s:%g", analytics.CacheKeyCoalition, threshold)
	var cached voting.Coalition
	if h.cache.Get(key, &cached) {
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	coalition, err := h.service.Coalition(r.Context(), threshold)
	if err != nil {
		if errors.Is(err, voting.ErrInvalidThreshold) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.cache.Set(key, coalition); err != nil {
		h.log.Warn().Err(err).Msg("Failed to cache coalition")
	}
	h.writeJSON(w, http.StatusOK, coalition)
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
