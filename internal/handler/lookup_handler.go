package handlers

import (
	"encoding/json"
	"net/http"
)

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.LookupService.GetCategories(r.Context())
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

func (h *Handlers) GetIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.LookupService.GetIngredients(r.Context())
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"ingredients": ingredients,
	})
}

func (h *Handlers) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Поле name обязательно", http.StatusBadRequest)
		return
	}

	ingredient, err := h.LookupService.CreateIngredient(r.Context(), req.Name)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":    true,
		"ingredient": ingredient,
	})
}
