package handlers

import (
	"log"
	"net/http"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/service"
	"github.com/go-chi/chi/v5"
)

type SecretHandler struct {
	secretService *service.SecretService
}

func NewSecretHandler(secretService *service.SecretService) *SecretHandler {
	return &SecretHandler{secretService: secretService}
}

type SecretsResponse struct {
	Secrets []*domain.Secret `json:"secrets"`
}

func (h *SecretHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	secrets, err := h.secretService.GetAllSecrets(r.Context())
	if err != nil {
		log.Printf("ERROR [secret.GetAll]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get secrets")
		return
	}

	writeJSON(w, http.StatusOK, SecretsResponse{Secrets: secrets})
}

func (h *SecretHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	secret, err := h.secretService.GetSecret(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "Secret not found")
			return
		}
		log.Printf("ERROR [secret.Get] secretID=%s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get secret")
		return
	}

	writeJSON(w, http.StatusOK, secret)
}
