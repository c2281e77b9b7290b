package service

import (
	"context"
	"fmt"

	"pickmydish/internal/models"
	"pickmydish/internal/repository"
	"pickmydish/internal/storage"
)

type CreateRecipeRequest struct {
	Name          string
	CategoryName  string
	CookingTime   *string
	Calories      *int64
	Steps         []string
	Moods         []string
	IngredientIDs []string
	ImagePath     *string
}

type UpdateRecipeRequest struct {
	Name          *string
	CategoryName  *string
	CookingTime   *string
	Calories      *int64
	Steps         *[]string
	Moods         *[]string
	IngredientIDs []string
}

type RecipeService interface {
	Create(ctx context.Context, owner *models.User, req CreateRecipeRequest) (*models.Recipe, error)
	GetAll(ctx context.Context) ([]models.RecipeDetails, error)
	GetByID(ctx context.Context, recipeID string) (*models.RecipeDetails, error)
	Update(ctx context.Context, caller *models.User, recipeID string, req UpdateRecipeRequest) (*models.RecipeDetails, error)
	Delete(ctx context.Context, caller *models.User, recipeID string) error
	UploadPicture(ctx context.Context, fileName string, data []byte) (string, error)
}

type recipeService struct {
	recipeRepo repository.RecipeRepository
	lookupRepo repository.LookupRepository
	storage    storage.Storage
}

func NewRecipeService(recipeRepo repository.RecipeRepository, lookupRepo repository.LookupRepository, storage storage.Storage) RecipeService {
	return &recipeService{
		recipeRepo: recipeRepo,
		lookupRepo: lookupRepo,
		storage:    storage,
	}
}

// canModify - единственное правило авторизации: администратор или владелец
func canModify(caller *models.User, recipe *models.Recipe) bool {
	return caller.IsAdmin || caller.UserID == recipe.UserID
}

func (s *recipeService) Create(ctx context.Context, owner *models.User, req CreateRecipeRequest) (*models.Recipe, error) {
	// владелец всегда аутентифицированный вызывающий, не поле запроса
	categoryID, err := s.lookupRepo.EnsureCategory(ctx, req.CategoryName)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		UserID:      owner.UserID,
		Name:        req.Name,
		CategoryID:  categoryID,
		CookingTime: req.CookingTime,
		Calories:    req.Calories,
		Steps:       req.Steps,
		Moods:       req.Moods,
		ImagePath:   req.ImagePath,
	}

	err = s.recipeRepo.Create(ctx, recipe, req.IngredientIDs)
	if err != nil {
		return nil, err
	}

	return recipe, nil
}

func (s *recipeService) GetAll(ctx context.Context) ([]models.RecipeDetails, error) {
	return s.recipeRepo.GetAll(ctx)
}

func (s *recipeService) GetByID(ctx context.Context, recipeID string) (*models.RecipeDetails, error) {
	return s.recipeRepo.GetDetailsByID(ctx, recipeID)
}

func (s *recipeService) Update(ctx context.Context, caller *models.User, recipeID string, req UpdateRecipeRequest) (*models.RecipeDetails, error) {
	// проверка существования идет раньше проверки прав
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if !canModify(caller, recipe) {
		return nil, fmt.Errorf("изменение чужого рецепта: %w", ErrForbidden)
	}

	// пропущенные поля сохраняют прежние значения
	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.CategoryName != nil && *req.CategoryName != "" {
		categoryID, err := s.lookupRepo.EnsureCategory(ctx, *req.CategoryName)
		if err != nil {
			return nil, err
		}
		recipe.CategoryID = categoryID
	}
	if req.CookingTime != nil {
		recipe.CookingTime = req.CookingTime
	}
	if req.Calories != nil {
		recipe.Calories = req.Calories
	}
	if req.Steps != nil {
		recipe.Steps = *req.Steps
	}
	if req.Moods != nil {
		recipe.Moods = *req.Moods
	}

	err = s.recipeRepo.Update(ctx, recipe, req.IngredientIDs)
	if err != nil {
		return nil, err
	}

	return s.recipeRepo.GetDetailsByID(ctx, recipeID)
}

func (s *recipeService) Delete(ctx context.Context, caller *models.User, recipeID string) error {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}

	if !canModify(caller, recipe) {
		return fmt.Errorf("удаление чужого рецепта: %w", ErrForbidden)
	}

	return s.recipeRepo.Delete(ctx, recipeID)
}

func (s *recipeService) UploadPicture(ctx context.Context, fileName string, data []byte) (string, error) {
	path, err := s.storage.UploadImage(ctx, "recipes-pictures", fileName, data)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения рецепта: %w", err)
	}
	return path, nil
}
