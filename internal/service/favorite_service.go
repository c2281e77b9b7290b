package service

import (
	"context"

	"pickmydish/internal/models"
	"pickmydish/internal/repository"
)

type FavoriteService interface {
	Add(ctx context.Context, userID, recipeID string) (*models.Favorite, error)
	Remove(ctx context.Context, userID, recipeID string) error
	List(ctx context.Context, userID string) ([]models.RecipeDetails, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	recipeRepo   repository.RecipeRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, recipeRepo repository.RecipeRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		recipeRepo:   recipeRepo,
	}
}

func (s *favoriteService) Add(ctx context.Context, userID, recipeID string) (*models.Favorite, error) {
	// несуществующий рецепт это NotFound, а не нарушение внешнего ключа
	_, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	return s.favoriteRepo.Add(ctx, userID, recipeID)
}

func (s *favoriteService) Remove(ctx context.Context, userID, recipeID string) error {
	return s.favoriteRepo.Remove(ctx, userID, recipeID)
}

func (s *favoriteService) List(ctx context.Context, userID string) ([]models.RecipeDetails, error) {
	return s.favoriteRepo.ListByUser(ctx, userID)
}
