package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pickmydish/internal/models"
	"pickmydish/internal/repository"
	"pickmydish/internal/service"
)

type RegisterRequest struct {
	Username string `json:"userName" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserResponse struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	ProfileImagePath *string   `json:"profileImagePath"`
	IsAdmin          bool      `json:"isAdmin"`
	CreatedAt        time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func toUserResponse(user *models.User) UserResponse {
	var profileImagePath *string
	if user.ProfileImagePath.Valid {
		profileImagePath = &user.ProfileImagePath.String
	}

	return UserResponse{
		ID:               user.UserID,
		Username:         user.Username,
		Email:            user.Email,
		ProfileImagePath: profileImagePath,
		IsAdmin:          user.IsAdmin,
		CreatedAt:        user.CreatedAt,
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		if strings.Contains(err.Error(), "Email") {
			WriteError(w, "Неверный формат email", http.StatusBadRequest)
		} else if strings.Contains(err.Error(), "Password") {
			WriteError(w, "Пароль должен быть не менее 6 символов", http.StatusBadRequest)
		} else {
			WriteError(w, "Неверные данные", http.StatusBadRequest)
		}
		return
	}

	serviceReq := service.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	user, token, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		// повторная регистрация на тот же email
		if errors.Is(err, repository.ErrAlreadyExists) {
			WriteError(w, "Пользователь уже существует", http.StatusBadRequest)
			return
		}
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Пользователь создан",
		Token:   token,
		User:    toUserResponse(user),
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, "Неверный email или пароль", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Вход выполнен",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// VerifyToken проверяет токен из заголовка и возвращает свежие данные пользователя
func (h *Handlers) VerifyToken(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		WriteError(w, "Неверный формат токена", http.StatusUnauthorized)
		return
	}

	user, err := h.AuthService.GetUserFromToken(r.Context(), tokenString)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"valid":   true,
		"user":    toUserResponse(user),
	})
}
