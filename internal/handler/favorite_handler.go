package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) AddFavorite(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	recipeID := mux.Vars(r)["recipeId"]

	favorite, err := h.FavoriteService.Add(r.Context(), user.UserID, recipeID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"favorite": favorite,
	})
}

func (h *Handlers) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	recipeID := mux.Vars(r)["recipeId"]

	if err := h.FavoriteService.Remove(r.Context(), user.UserID, recipeID); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Рецепт удален из избранного",
	})
}

// GetFavorites возвращает избранное только самого вызывающего
func (h *Handlers) GetFavorites(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	recipes, err := h.FavoriteService.List(r.Context(), user.UserID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RecipesResponse{
		Success: true,
		Count:   len(recipes),
		Recipes: recipes,
	})
}
