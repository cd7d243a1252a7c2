package handlers

import (
	"log"
	"net/http"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/service"
	"github.com/go-chi/chi/v5"
)

type BuildHandler struct {
	buildService *service.BuildService
}

func NewBuildHandler(buildService *service.BuildService) *BuildHandler {
	return &BuildHandler{buildService: buildService}
}

type BuildsResponse struct {
	Builds []*domain.Build `json:"builds"`
}

func (h *BuildHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	builds, err := h.buildService.GetAllBuilds(r.Context())
	if err != nil {
		log.Printf("ERROR [build.GetAll]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get builds")
		return
	}

	writeJSON(w, http.StatusOK, BuildsResponse{Builds: builds})
}

func (h *BuildHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	build, err := h.buildService.GetBuild(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "Build not found")
			return
		}
		log.Printf("ERROR [build.Get] buildID=%s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get build")
		return
	}

	writeJSON(w, http.StatusOK, build)
}
