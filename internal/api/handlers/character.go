package handlers

import (
	"log"
	"net/http"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/service"
	"github.com/go-chi/chi/v5"
)

type CharacterHandler struct {
	characterService *service.CharacterService
}

func NewCharacterHandler(characterService *service.CharacterService) *CharacterHandler {
	return &CharacterHandler{characterService: characterService}
}

type CharactersResponse struct {
	Characters []*domain.Character `json:"characters"`
}

func (h *CharacterHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	characters, err := h.characterService.GetAllCharacters(r.Context())
	if err != nil {
		log.Printf("ERROR [character.GetAll]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get characters")
		return
	}

	writeJSON(w, http.StatusOK, CharactersResponse{Characters: characters})
}

func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	character, err := h.characterService.GetCharacter(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "Character not found")
			return
		}
		log.Printf("ERROR [character.Get] characterID=%s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get character")
		return
	}

	writeJSON(w, http.StatusOK, character)
}

func (h *CharacterHandler) Filter(w http.ResponseWriter, r *http.Request) {
	params := service.CharacterFilterParams{
		Playstyle:   r.URL.Query().Get("playstyle"),
		PrimaryStat: r.URL.Query().Get("primary_stat"),
	}

	filtered, err := h.characterService.FilterCharacters(r.Context(), params)
	if err != nil {
		log.Printf("ERROR [character.Filter]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to filter characters")
		return
	}

	writeJSON(w, http.StatusOK, filtered)
}
