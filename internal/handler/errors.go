package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pickmydish/internal/repository"
	"pickmydish/internal/service"
	"pickmydish/internal/storage"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError переводит ошибки нижних слоев в HTTP-статусы.
// Текст исходной ошибки уходит в details только вне production.
func (h *Handlers) WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "Не найдено", http.StatusNotFound)
	case errors.Is(err, repository.ErrAlreadyExists):
		WriteError(w, "Запись уже существует", http.StatusConflict)
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, "Неверный email или пароль", http.StatusUnauthorized)
	case errors.Is(err, service.ErrTokenExpired):
		WriteError(w, "Срок действия токена истек", http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidToken):
		WriteError(w, "Недействительный токен", http.StatusUnauthorized)
	case errors.Is(err, storage.ErrFileTooLarge):
		WriteError(w, "Файл превышает допустимый размер", http.StatusBadRequest)
	case errors.Is(err, storage.ErrUnsupportedFileType):
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
	default:
		response := ErrorResponse{Error: "Внутренняя ошибка сервера"}
		if h.Cfg != nil && h.Cfg.AppEnv != "production" {
			response.Details = err.Error()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(response)
	}
}
