package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	handlers "pickmydish/internal/handler"
	"pickmydish/internal/models"
	"pickmydish/internal/service"
)

type Middleware func(http.Handler) http.Handler

// isPublic - таблица открытых маршрутов, всё остальное требует bearer-токен
func isPublic(r *http.Request) bool {
	if r.Method == http.MethodOptions {
		return true
	}

	publicPaths := map[string]string{
		"/":                  http.MethodGet,
		"/health":            http.MethodGet,
		"/api/auth/register": http.MethodPost,
		"/api/auth/login":    http.MethodPost,
		"/api/auth/verify":   http.MethodGet,
		"/api/categories":    http.MethodGet,
		"/api/ingredients":   http.MethodGet,
	}

	if method, ok := publicPaths[r.URL.Path]; ok && r.Method == method {
		return true
	}

	// чтение рецептов открыто, мутации нет
	if r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/recipes") {
		return true
	}

	return false
}

// AuthMiddleware извлекает bearer-токен, проверяет его и перечитывает
// пользователя из БД, после чего кладет его в контекст запроса
func AuthMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handlers.WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
				return
			}

			// format "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				handlers.WriteError(w, "Неверный формат токена", http.StatusUnauthorized)
				return
			}

			user, err := authService.GetUserFromToken(r.Context(), parts[1])
			if err != nil {
				if errors.Is(err, service.ErrTokenExpired) {
					handlers.WriteError(w, "Срок действия токена истек", http.StatusUnauthorized)
					return
				}
				handlers.WriteError(w, "Недействительный токен", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), "user", user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnlyMiddleware дополнительно требует установленный флаг администратора
func AdminOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := r.Context().Value("user").(*models.User)
		if !ok {
			handlers.WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
			return
		}

		if !user.IsAdmin {
			handlers.WriteError(w, "Требуются права администратора", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
