package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/service"
	"github.com/go-chi/chi/v5"
)

type BossHandler struct {
	bossService *service.BossService
}

func NewBossHandler(bossService *service.BossService) *BossHandler {
	return &BossHandler{bossService: bossService}
}

type BossesResponse struct {
	Bosses []*domain.Boss `json:"bosses"`
}

func (h *BossHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	bosses, err := h.bossService.GetAllBosses(r.Context())
	if err != nil {
		log.Printf("ERROR [boss.GetAll]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get bosses")
		return
	}

	writeJSON(w, http.StatusOK, BossesResponse{Bosses: bosses})
}

func (h *BossHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	boss, err := h.bossService.GetBoss(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "Boss not found")
			return
		}
		log.Printf("ERROR [boss.Get] bossID=%s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get boss")
		return
	}

	writeJSON(w, http.StatusOK, boss)
}

func (h *BossHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	recommendations, err := h.bossService.GetRecommendations(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "Boss not found")
			return
		}
		log.Printf("ERROR [boss.GetRecommendations] bossID=%s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get recommendations")
		return
	}

	writeJSON(w, http.StatusOK, recommendations)
}

// Filter handles /api/filter-bosses. All four predicates are optional and
// ANDed; a malformed level value is treated as absent, like an unknown
// difficulty bucket.
func (h *BossHandler) Filter(w http.ResponseWriter, r *http.Request) {
	params := service.BossFilterParams{
		Difficulty: r.URL.Query().Get("difficulty"),
		Weakness:   r.URL.Query().Get("weakness"),
	}
	if raw := r.URL.Query().Get("min_level"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.MinLevel = &v
		}
	}
	if raw := r.URL.Query().Get("max_level"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.MaxLevel = &v
		}
	}

	filtered, err := h.bossService.FilterBosses(r.Context(), params)
	if err != nil {
		log.Printf("ERROR [boss.Filter]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to filter bosses")
		return
	}

	writeJSON(w, http.StatusOK, filtered)
}

type RateBossRequest struct {
	BossID string `json:"boss_id"`
	Rating int    `json:"rating"`
	UserID string `json:"user_id"`
}

func (h *BossHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req RateBossRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		req.UserID = domain.AnonymousUser
	}

	summary, err := h.bossService.RateBoss(r.Context(), req.UserID, req.BossID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRating):
			writeError(w, http.StatusBadRequest, err.Error())
		case isNotFound(err):
			writeError(w, http.StatusNotFound, "Boss not found")
		default:
			log.Printf("ERROR [boss.Rate] bossID=%s: %v", req.BossID, err)
			writeError(w, http.StatusInternalServerError, "Failed to rate boss")
		}
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
