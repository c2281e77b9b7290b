package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pickmydish/internal/models"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) UpdateUsername(ctx context.Context, userID, username string) error {
	args := m.Called(ctx, userID, username)
	return args.Error(0)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID, password string) error {
	args := m.Called(ctx, userID, password)
	return args.Error(0)
}

func (m *mockUserRepository) UpdateProfileImage(ctx context.Context, userID, imagePath string) error {
	args := m.Called(ctx, userID, imagePath)
	return args.Error(0)
}

type mockRecipeRepository struct {
	mock.Mock
}

func (m *mockRecipeRepository) Create(ctx context.Context, recipe *models.Recipe, ingredientIDs []string) error {
	args := m.Called(ctx, recipe, ingredientIDs)
	return args.Error(0)
}

func (m *mockRecipeRepository) GetByID(ctx context.Context, recipeID string) (*models.Recipe, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) GetDetailsByID(ctx context.Context, recipeID string) (*models.RecipeDetails, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeDetails), args.Error(1)
}

func (m *mockRecipeRepository) GetAll(ctx context.Context) ([]models.RecipeDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecipeDetails), args.Error(1)
}

func (m *mockRecipeRepository) Update(ctx context.Context, recipe *models.Recipe, ingredientIDs []string) error {
	args := m.Called(ctx, recipe, ingredientIDs)
	return args.Error(0)
}

func (m *mockRecipeRepository) Delete(ctx context.Context, recipeID string) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}

type mockLookupRepository struct {
	mock.Mock
}

func (m *mockLookupRepository) EnsureCategory(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *mockLookupRepository) EnsureIngredient(ctx context.Context, name string) (*models.Ingredient, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *mockLookupRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockLookupRepository) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

type mockFavoriteRepository struct {
	mock.Mock
}

func (m *mockFavoriteRepository) Add(ctx context.Context, userID, recipeID string) (*models.Favorite, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *mockFavoriteRepository) Remove(ctx context.Context, userID, recipeID string) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *mockFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.RecipeDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecipeDetails), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadImage(ctx context.Context, prefix, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, prefix, fileName, data)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) DeleteImage(ctx context.Context, objectPath string) error {
	args := m.Called(ctx, objectPath)
	return args.Error(0)
}
