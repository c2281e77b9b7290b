package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"pickmydish/cmd/app"
	"pickmydish/internal/config"
	handlers "pickmydish/internal/handler"
	"pickmydish/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/verify", handler.VerifyToken).Methods(http.MethodGet)

	router.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/username", handler.UpdateUsername).Methods(http.MethodPut)
	router.HandleFunc("/api/users/password", handler.ChangePassword).Methods(http.MethodPut)
	router.HandleFunc("/api/users/profile-image", handler.UploadProfileImage).Methods(http.MethodPost)

	router.HandleFunc("/api/recipes", handler.GetRecipes).Methods(http.MethodGet)
	router.HandleFunc("/api/recipes", handler.CreateRecipe).Methods(http.MethodPost)
	router.HandleFunc("/api/recipes/{id}", handler.GetRecipe).Methods(http.MethodGet)
	router.HandleFunc("/api/recipes/{id}", handler.UpdateRecipe).Methods(http.MethodPut)
	router.HandleFunc("/api/recipes/{id}", handler.DeleteRecipe).Methods(http.MethodDelete)

	router.HandleFunc("/api/categories", handler.GetCategories).Methods(http.MethodGet)
	router.HandleFunc("/api/ingredients", handler.GetIngredients).Methods(http.MethodGet)
	router.HandleFunc("/api/ingredients", handler.CreateIngredient).Methods(http.MethodPost)

	router.HandleFunc("/api/favorites", handler.GetFavorites).Methods(http.MethodGet)
	router.HandleFunc("/api/favorites/{recipeId}", handler.AddFavorite).Methods(http.MethodPost)
	router.HandleFunc("/api/favorites/{recipeId}", handler.RemoveFavorite).Methods(http.MethodDelete)

	router.Handle("/api/admin/stats",
		middleware.AdminOnlyMiddleware(http.HandlerFunc(handler.GetStats))).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(services.Auth),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
