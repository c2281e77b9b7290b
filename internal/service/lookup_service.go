package service

import (
	"context"

	"pickmydish/internal/models"
	"pickmydish/internal/repository"
)

type LookupService interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetIngredients(ctx context.Context) ([]models.Ingredient, error)
	CreateIngredient(ctx context.Context, name string) (*models.Ingredient, error)
}

type lookupService struct {
	lookupRepo repository.LookupRepository
}

func NewLookupService(lookupRepo repository.LookupRepository) LookupService {
	return &lookupService{lookupRepo: lookupRepo}
}

func (s *lookupService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.lookupRepo.GetCategories(ctx)
}

func (s *lookupService) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return s.lookupRepo.GetIngredients(ctx)
}

func (s *lookupService) CreateIngredient(ctx context.Context, name string) (*models.Ingredient, error) {
	return s.lookupRepo.EnsureIngredient(ctx, name)
}
