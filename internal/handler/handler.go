package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"pickmydish/internal/config"
	"pickmydish/internal/models"
	"pickmydish/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	UserService     service.UserService
	RecipeService   service.RecipeService
	FavoriteService service.FavoriteService
	LookupService   service.LookupService
	StatsService    service.StatsService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     services.Auth,
		UserService:     services.User,
		RecipeService:   services.Recipe,
		FavoriteService: services.Favorite,
		LookupService:   services.Lookup,
		StatsService:    services.Stats,
		Cfg:             config,
		Validate:        validator.New(),
	}
}

// currentUser достает пользователя, положенного в контекст auth-middleware
func currentUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value("user").(*models.User)
	return user, ok
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Pick My Dish API is running!",
	})
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"status":  "ok",
	})
}
