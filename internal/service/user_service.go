package service

import (
	"context"
	"fmt"

	"pickmydish/internal/models"
	"pickmydish/internal/repository"
	"pickmydish/internal/storage"
)

type UserService interface {
	UpdateUsername(ctx context.Context, userID, username string) error
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	UploadProfileImage(ctx context.Context, user *models.User, fileName string, data []byte) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
	}
}

func (s *userService) UpdateUsername(ctx context.Context, userID, username string) error {
	return s.userRepo.UpdateUsername(ctx, userID, username)
}

// ChangePassword - единственный путь смены хеша пароля
func (s *userService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	_, err = s.userRepo.VerifyPassword(ctx, user.Email, oldPassword)
	if err != nil {
		return fmt.Errorf("текущий пароль не подтвержден: %w", ErrInvalidCredentials)
	}

	return s.userRepo.UpdatePassword(ctx, userID, newPassword)
}

func (s *userService) UploadProfileImage(ctx context.Context, user *models.User, fileName string, data []byte) (string, error) {
	path, err := s.storage.UploadImage(ctx, "profile-pictures", fileName, data)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения профиля: %w", err)
	}

	err = s.userRepo.UpdateProfileImage(ctx, user.UserID, path)
	if err != nil {
		return "", err
	}

	return path, nil
}
