package api

import (
	"net/http"

	"github.com/dom/nightreign-guide/internal/api/handlers"
	"github.com/dom/nightreign-guide/internal/api/middleware"
	"github.com/dom/nightreign-guide/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Liveness/version message
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": "Elden Ring Nightreign Guide API"}`))
	})

	// Initialize handlers
	bossHandler := handlers.NewBossHandler(services.Boss)
	characterHandler := handlers.NewCharacterHandler(services.Character)
	buildHandler := handlers.NewBuildHandler(services.Build)
	achievementHandler := handlers.NewAchievementHandler(services.Achievement)
	walkthroughHandler := handlers.NewWalkthroughHandler(services.Walkthrough)
	creatureHandler := handlers.NewCreatureHandler(services.Creature)
	secretHandler := handlers.NewSecretHandler(services.Secret)
	weaponHandler := handlers.NewWeaponHandler(services.Weapon)
	searchHandler := handlers.NewSearchHandler(services.Search)
	customBuildHandler := handlers.NewCustomBuildHandler(services.CustomBuild)

	r.Route("/api", func(r chi.Router) {
		r.Route("/bosses", func(r chi.Router) {
			r.Get("/", bossHandler.GetAll)
			r.Get("/{id}", bossHandler.Get)
		})

		r.Route("/characters", func(r chi.Router) {
			r.Get("/", characterHandler.GetAll)
			r.Get("/{id}", characterHandler.Get)
		})

		r.Route("/builds", func(r chi.Router) {
			r.Get("/", buildHandler.GetAll)
			r.Get("/{id}", buildHandler.Get)
		})

		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", achievementHandler.GetAll)
			r.Get("/{id}", achievementHandler.Get)
		})

		r.Route("/walkthroughs", func(r chi.Router) {
			r.Get("/", walkthroughHandler.GetAll)
			r.Get("/{character}", walkthroughHandler.Get)
		})

		r.Route("/creatures", func(r chi.Router) {
			r.Get("/", creatureHandler.GetAll)
			r.Get("/{id}", creatureHandler.Get)
		})

		r.Route("/secrets", func(r chi.Router) {
			r.Get("/", secretHandler.GetAll)
			r.Get("/{id}", secretHandler.Get)
		})

		r.Get("/weapon-skills", weaponHandler.GetSkills)
		r.Get("/weapon-passives", weaponHandler.GetPassives)

		r.Get("/search", searchHandler.Handle)
		r.Get("/boss-recommendations/{id}", bossHandler.GetRecommendations)

		r.Post("/rate-boss", bossHandler.Rate)
		r.Post("/custom-build", customBuildHandler.Create)
		r.Get("/custom-builds", customBuildHandler.GetAll)

		r.Get("/filter-bosses", bossHandler.Filter)
		r.Get("/filter-characters", characterHandler.Filter)
		r.Get("/filter-creatures", creatureHandler.Filter)
	})

	return r
}
