package service

import (
	"errors"

	"pickmydish/internal/config"
	"pickmydish/internal/repository"
	"pickmydish/internal/storage"
)

var (
	// ErrForbidden - личность установлена, но прав недостаточно
	ErrForbidden = errors.New("доступ запрещен")
	// ErrInvalidCredentials - неверная пара email/пароль
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	// ErrTokenExpired - срок действия токена истек
	ErrTokenExpired = errors.New("срок действия токена истек")
	// ErrInvalidToken - токен не прошел проверку подписи или формата
	ErrInvalidToken = errors.New("недействительный токен")
)

type Service struct {
	Auth     AuthService
	User     UserService
	Recipe   RecipeService
	Favorite FavoriteService
	Lookup   LookupService
	Stats    StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, cfg),
		User:     NewUserService(rep.User, storage),
		Recipe:   NewRecipeService(rep.Recipe, rep.Lookup, storage),
		Favorite: NewFavoriteService(rep.Favorite, rep.Recipe),
		Lookup:   NewLookupService(rep.Lookup),
		Stats:    NewStatsService(rep.Stats),
	}
}
