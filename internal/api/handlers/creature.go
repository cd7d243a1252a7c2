package handlers

import (
	"log"
	"net/http"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/service"
	"github.com/go-chi/chi/v5"
)

type CreatureHandler struct {
	creatureService *service.CreatureService
}

func NewCreatureHandler(creatureService *service.CreatureService) *CreatureHandler {
	return &CreatureHandler{creatureService: creatureService}
}

type CreaturesResponse struct {
	Creatures []*domain.Creature `json:"creatures"`
}

func (h *CreatureHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	creatures, err := h.creatureService.GetAllCreatures(r.Context())
	if err != nil {
		log.Printf("ERROR [creature.GetAll]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get creatures")
		return
	}

	writeJSON(w, http.StatusOK, CreaturesResponse{Creatures: creatures})
}

func (h *CreatureHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	creature, err := h.creatureService.GetCreature(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "Creature not found")
			return
		}
		log.Printf("ERROR [creature.Get] creatureID=%s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get creature")
		return
	}

	writeJSON(w, http.StatusOK, creature)
}

func (h *CreatureHandler) Filter(w http.ResponseWriter, r *http.Request) {
	params := service.CreatureFilterParams{
		Type:        r.URL.Query().Get("type"),
		ThreatLevel: r.URL.Query().Get("threat_level"),
		Weakness:    r.URL.Query().Get("weakness"),
	}

	filtered, err := h.creatureService.FilterCreatures(r.Context(), params)
	if err != nil {
		log.Printf("ERROR [creature.Filter]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to filter creatures")
		return
	}

	writeJSON(w, http.StatusOK, filtered)
}
