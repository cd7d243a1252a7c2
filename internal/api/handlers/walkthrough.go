package handlers

import (
	"log"
	"net/http"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/service"
	"github.com/go-chi/chi/v5"
)

type WalkthroughHandler struct {
	walkthroughService *service.WalkthroughService
}

func NewWalkthroughHandler(walkthroughService *service.WalkthroughService) *WalkthroughHandler {
	return &WalkthroughHandler{walkthroughService: walkthroughService}
}

type WalkthroughsResponse struct {
	Walkthroughs []*domain.Walkthrough `json:"walkthroughs"`
}

func (h *WalkthroughHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	walkthroughs, err := h.walkthroughService.GetAllWalkthroughs(r.Context())
	if err != nil {
		log.Printf("ERROR [walkthrough.GetAll]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get walkthroughs")
		return
	}

	writeJSON(w, http.StatusOK, WalkthroughsResponse{Walkthroughs: walkthroughs})
}

// Get looks up by character name, exact and case sensitive.
func (h *WalkthroughHandler) Get(w http.ResponseWriter, r *http.Request) {
	character := chi.URLParam(r, "character")

	walkthrough, err := h.walkthroughService.GetWalkthrough(r.Context(), character)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "Walkthrough not found")
			return
		}
		log.Printf("ERROR [walkthrough.Get] character=%s: %v", character, err)
		writeError(w, http.StatusInternalServerError, "Failed to get walkthrough")
		return
	}

	writeJSON(w, http.StatusOK, walkthrough)
}
