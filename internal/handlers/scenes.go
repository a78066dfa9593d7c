package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/riftglance/insights-api/internal/logic"
)

// InsightRequest is the body of the compute endpoints.
type InsightRequest struct {
	PUUID    string   `json:"puuid" validate:"required"`
	MatchIDs []string `json:"match_ids" validate:"max=500,dive,required"`
	Season   int      `json:"season" validate:"gte=0"`
}

func (h *Handler) decodeInsightRequest(w http.ResponseWriter, r *http.Request) (*InsightRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req InsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return nil, false
	}
	if req.Season == 0 {
		req.Season = time.Now().UTC().Year()
	}
	return &req, true
}

// ListScenes returns the scene catalog in canonical order
func (h *Handler) ListScenes(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"scenes": h.scenes.List(),
	})
}

// ComputeScene computes a single scene for a player
func (h *Handler) ComputeScene(w http.ResponseWriter, r *http.Request) {
	sceneID := chi.URLParam(r, "sceneID")
	req, ok := h.decodeInsightRequest(w, r)
	if !ok {
		return
	}

	payload, err := h.scenes.Compute(r.Context(), sceneID, logic.SceneContext{
		PUUID:    req.PUUID,
		MatchIDs: req.MatchIDs,
		Season:   req.Season,
	})
	if err != nil {
		if errors.Is(err, logic.ErrUnknownScene) {
			h.errorResponse(w, http.StatusNotFound, "Unknown scene: "+sceneID)
			return
		}
		h.logger.Errorw("Scene compute failed", "scene", sceneID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Scene computation failed")
		return
	}

	h.jsonResponse(w, http.StatusOK, payload)
}

// ComputeAllScenes computes every scene for a player
func (h *Handler) ComputeAllScenes(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeInsightRequest(w, r)
	if !ok {
		return
	}

	payloads := h.scenes.ComputeAll(r.Context(), logic.SceneContext{
		PUUID:    req.PUUID,
		MatchIDs: req.MatchIDs,
		Season:   req.Season,
	})

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"puuid":  req.PUUID,
		"season": req.Season,
		"scenes": payloads,
	})
}
