package handlers

import (
	"log"
	"net/http"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/service"
)

type WeaponHandler struct {
	weaponService *service.WeaponService
}

func NewWeaponHandler(weaponService *service.WeaponService) *WeaponHandler {
	return &WeaponHandler{weaponService: weaponService}
}

type WeaponSkillsResponse struct {
	WeaponSkills []*domain.WeaponSkill `json:"weapon_skills"`
}

type WeaponPassivesResponse struct {
	WeaponPassives []*domain.WeaponPassive `json:"weapon_passives"`
}

func (h *WeaponHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.weaponService.GetAllSkills(r.Context())
	if err != nil {
		log.Printf("ERROR [weapon.GetSkills]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get weapon skills")
		return
	}

	writeJSON(w, http.StatusOK, WeaponSkillsResponse{WeaponSkills: skills})
}

func (h *WeaponHandler) GetPassives(w http.ResponseWriter, r *http.Request) {
	passives, err := h.weaponService.GetAllPassives(r.Context())
	if err != nil {
		log.Printf("ERROR [weapon.GetPassives]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get weapon passives")
		return
	}

	writeJSON(w, http.StatusOK, WeaponPassivesResponse{WeaponPassives: passives})
}
