package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dom/nightreign-guide/internal/service"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Handle is the one endpoint that rescues unexpected failures: anything the
// search path returns surfaces as a 500 with the underlying message. An
// empty or missing query matches nothing.
func (h *SearchHandler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	results, err := h.searchService.Search(r.Context(), query)
	if err != nil {
		log.Printf("ERROR [search.Handle] query=%q: %v", query, err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Search failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, results)
}
