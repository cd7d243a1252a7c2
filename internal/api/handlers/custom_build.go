package handlers

import (
	"log"
	"net/http"

	"github.com/dom/nightreign-guide/internal/service"
)

type CustomBuildHandler struct {
	customBuildService *service.CustomBuildService
}

func NewCustomBuildHandler(customBuildService *service.CustomBuildService) *CustomBuildHandler {
	return &CustomBuildHandler{customBuildService: customBuildService}
}

type CreateCustomBuildResponse struct {
	Message string `json:"message"`
	BuildID string `json:"build_id"`
}

type CustomBuildsResponse struct {
	CustomBuilds []map[string]any `json:"custom_builds"`
}

// Create accepts any JSON object. Beyond id, user_id and created_at
// injection no schema is enforced.
func (h *CustomBuildHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields == nil {
		fields = map[string]any{}
	}

	build, err := h.customBuildService.CreateCustomBuild(r.Context(), fields)
	if err != nil {
		log.Printf("ERROR [customBuild.Create]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create custom build")
		return
	}

	writeJSON(w, http.StatusOK, CreateCustomBuildResponse{
		Message: "Custom build created successfully",
		BuildID: build.ID,
	})
}

func (h *CustomBuildHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	builds, err := h.customBuildService.GetAllCustomBuilds(r.Context())
	if err != nil {
		log.Printf("ERROR [customBuild.GetAll]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get custom builds")
		return
	}

	docs := make([]map[string]any, 0, len(builds))
	for _, build := range builds {
		doc, err := build.Document()
		if err != nil {
			log.Printf("ERROR [customBuild.GetAll] buildID=%s: %v", build.ID, err)
			writeError(w, http.StatusInternalServerError, "Failed to decode custom build")
			return
		}
		docs = append(docs, doc)
	}

	writeJSON(w, http.StatusOK, CustomBuildsResponse{CustomBuilds: docs})
}
