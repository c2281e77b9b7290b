package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"pickmydish/internal/models"
	"pickmydish/internal/service"
)

type RecipesResponse struct {
	Success bool                   `json:"success"`
	Count   int                    `json:"count"`
	Recipes []models.RecipeDetails `json:"recipes"`
}

// parseStringArray разбирает поле формы, сериализованное клиентом как JSON-массив
func parseStringArray(value string) ([]string, error) {
	if value == "" {
		return nil, nil
	}

	var items []string
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *Handlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+512*1024)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			WriteError(w, "Файл превышает допустимый размер", http.StatusBadRequest)
		} else {
			WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		}
		return
	}

	name := r.FormValue("name")
	category := r.FormValue("category")

	if name == "" || category == "" {
		WriteError(w, "Поля name и category обязательны", http.StatusBadRequest)
		return
	}

	steps, err := parseStringArray(r.FormValue("instructions"))
	if err != nil {
		WriteError(w, "Поле instructions должно быть JSON-массивом строк", http.StatusBadRequest)
		return
	}

	moods, err := parseStringArray(r.FormValue("moods"))
	if err != nil {
		WriteError(w, "Поле moods должно быть JSON-массивом строк", http.StatusBadRequest)
		return
	}

	ingredientIDs, err := parseStringArray(r.FormValue("ingredientIds"))
	if err != nil {
		WriteError(w, "Поле ingredientIds должно быть JSON-массивом", http.StatusBadRequest)
		return
	}

	serviceReq := service.CreateRecipeRequest{
		Name:          name,
		CategoryName:  category,
		Steps:         steps,
		Moods:         moods,
		IngredientIDs: ingredientIDs,
	}

	if timeValue := r.FormValue("time"); timeValue != "" {
		serviceReq.CookingTime = &timeValue
	}

	if caloriesValue := r.FormValue("calories"); caloriesValue != "" {
		calories, err := strconv.ParseInt(caloriesValue, 10, 64)
		if err != nil {
			WriteError(w, "Поле calories должно быть числом", http.StatusBadRequest)
			return
		}
		serviceReq.Calories = &calories
	}

	// необязательное изображение уходит в хранилище до создания записи
	file, header, err := r.FormFile("picture")
	if err == nil {
		defer file.Close()

		data, readErr := io.ReadAll(file)
		if readErr != nil {
			WriteError(w, "Ошибка при чтении файла", http.StatusBadRequest)
			return
		}

		picturePath, uploadErr := h.RecipeService.UploadPicture(r.Context(), header.Filename, data)
		if uploadErr != nil {
			h.WriteServiceError(w, uploadErr)
			return
		}
		serviceReq.ImagePath = &picturePath
	} else if !errors.Is(err, http.ErrMissingFile) {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}

	recipe, err := h.RecipeService.Create(r.Context(), user, serviceReq)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"message":     "Рецепт создан",
		"recipeId":    recipe.RecipeID,
		"picturePath": recipe.ImagePath,
	})
}

func (h *Handlers) GetRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.RecipeService.GetAll(r.Context())
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

func (h *Handlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID := mux.Vars(r)["id"]

	recipe, err := h.RecipeService.GetByID(r.Context(), recipeID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"recipe":  recipe,
	})
}

func (h *Handlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	recipeID := mux.Vars(r)["id"]

	var req struct {
		Name          *string   `json:"name"`
		Category      *string   `json:"category"`
		Time          *string   `json:"time"`
		Calories      *int64    `json:"calories"`
		Instructions  *[]string `json:"instructions"`
		Moods         *[]string `json:"moods"`
		IngredientIds []string  `json:"ingredientIds"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Name != nil && *req.Name == "" {
		WriteError(w, "Поле name не может быть пустым", http.StatusBadRequest)
		return
	}

	serviceReq := service.UpdateRecipeRequest{
		Name:          req.Name,
		CategoryName:  req.Category,
		CookingTime:   req.Time,
		Calories:      req.Calories,
		Steps:         req.Instructions,
		Moods:         req.Moods,
		IngredientIDs: req.IngredientIds,
	}

	recipe, err := h.RecipeService.Update(r.Context(), user, recipeID, serviceReq)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"recipe":  recipe,
	})
}

func (h *Handlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	recipeID := mux.Vars(r)["id"]

	if err := h.RecipeService.Delete(r.Context(), user, recipeID); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Рецепт удален",
	})
}
