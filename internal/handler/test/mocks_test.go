package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pickmydish/internal/config"
	handlers "pickmydish/internal/handler"
	"pickmydish/internal/models"
	"pickmydish/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) GenerateToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) VerifyToken(tokenString string) (*service.TokenClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenClaims), args.Error(1)
}

func (m *MockAuthService) GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UpdateUsername(ctx context.Context, userID, username string) error {
	args := m.Called(ctx, userID, username)
	return args.Error(0)
}

func (m *MockUserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockUserService) UploadProfileImage(ctx context.Context, user *models.User, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, user, fileName, data)
	return args.String(0), args.Error(1)
}

type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Create(ctx context.Context, owner *models.User, req service.CreateRecipeRequest) (*models.Recipe, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) GetAll(ctx context.Context) ([]models.RecipeDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecipeDetails), args.Error(1)
}

func (m *MockRecipeService) GetByID(ctx context.Context, recipeID string) (*models.RecipeDetails, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeDetails), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, caller *models.User, recipeID string, req service.UpdateRecipeRequest) (*models.RecipeDetails, error) {
	args := m.Called(ctx, caller, recipeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeDetails), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, caller *models.User, recipeID string) error {
	args := m.Called(ctx, caller, recipeID)
	return args.Error(0)
}

func (m *MockRecipeService) UploadPicture(ctx context.Context, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, fileName, data)
	return args.String(0), args.Error(1)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, userID, recipeID string) (*models.Favorite, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockFavoriteService) Remove(ctx context.Context, userID, recipeID string) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockFavoriteService) List(ctx context.Context, userID string) ([]models.RecipeDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecipeDetails), args.Error(1)
}

type MockLookupService struct {
	mock.Mock
}

func (m *MockLookupService) GetCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockLookupService) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockLookupService) CreateIngredient(ctx context.Context, name string) (*models.Ingredient, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetRowCounts(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type handlerMocks struct {
	auth     *MockAuthService
	user     *MockUserService
	recipe   *MockRecipeService
	favorite *MockFavoriteService
	lookup   *MockLookupService
	stats    *MockStatsService
}

func newTestHandlers() (*handlers.Handlers, *handlerMocks) {
	m := &handlerMocks{
		auth:     new(MockAuthService),
		user:     new(MockUserService),
		recipe:   new(MockRecipeService),
		favorite: new(MockFavoriteService),
		lookup:   new(MockLookupService),
		stats:    new(MockStatsService),
	}

	services := &service.Service{
		Auth:     m.auth,
		User:     m.user,
		Recipe:   m.recipe,
		Favorite: m.favorite,
		Lookup:   m.lookup,
		Stats:    m.stats,
	}

	cfg := &config.Config{
		AppEnv:        "test",
		MaxUploadSize: 5 * 1024 * 1024,
	}

	return handlers.NewHandlers(services, cfg), m
}
