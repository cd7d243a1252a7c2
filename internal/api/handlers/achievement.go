package handlers

import (
	"log"
	"net/http"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/service"
	"github.com/go-chi/chi/v5"
)

type AchievementHandler struct {
	achievementService *service.AchievementService
}

func NewAchievementHandler(achievementService *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

type AchievementsResponse struct {
	Achievements []*domain.Achievement `json:"achievements"`
}

// GetAll returns achievements ordered by ascending rank.
func (h *AchievementHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.achievementService.GetAllAchievements(r.Context())
	if err != nil {
		log.Printf("ERROR [achievement.GetAll]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get achievements")
		return
	}

	writeJSON(w, http.StatusOK, AchievementsResponse{Achievements: achievements})
}

func (h *AchievementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	achievement, err := h.achievementService.GetAchievement(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "Achievement not found")
			return
		}
		log.Printf("ERROR [achievement.Get] achievementID=%s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get achievement")
		return
	}

	writeJSON(w, http.StatusOK, achievement)
}
