package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pickmydish/internal/config"
	"pickmydish/internal/models"
	"pickmydish/internal/repository"
)

type RegisterRequest struct {
	Username string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenClaims - проверенные утверждения из bearer-токена
type TokenClaims struct {
	UserID   string
	Username string
	Email    string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GenerateToken(user *models.User) (string, error)
	VerifyToken(tokenString string) (*TokenClaims, error)
	GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, "", fmt.Errorf("пользователь с email %s: %w", req.Email, repository.ErrAlreadyExists)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка аутентификации: %w", ErrInvalidCredentials)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	return user, token, nil
}

func (s *authService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.UserID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      time.Now().Add(s.cfg.TokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// VerifyToken проверяет подпись и срок действия. Любая проблема с токеном
// означает отказ, частичных claims не бывает.
func (s *authService) VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("токен просрочен: %w", ErrTokenExpired)
		}
		return nil, fmt.Errorf("ошибка парсинга токена: %w", ErrInvalidToken)
	}

	if !token.Valid {
		return nil, fmt.Errorf("токен не прошел проверку: %w", ErrInvalidToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("неверный формат claims: %w", ErrInvalidToken)
	}

	userID, ok1 := claims["userId"].(string)
	username, ok2 := claims["username"].(string)
	email, ok3 := claims["email"].(string)

	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("неверные данные в токене: %w", ErrInvalidToken)
	}

	return &TokenClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
	}, nil
}

// GetUserFromToken после проверки токена перечитывает пользователя из БД:
// удаленный аккаунт не может действовать даже с валидным токеном
func (s *authService) GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("пользователь из токена не найден: %w", ErrInvalidToken)
		}
		return nil, err
	}

	return user, nil
}
