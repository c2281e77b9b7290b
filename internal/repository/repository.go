package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"pickmydish/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateUsername(ctx context.Context, userID, username string) error
	UpdatePassword(ctx context.Context, userID, password string) error
	UpdateProfileImage(ctx context.Context, userID, imagePath string) error
}

type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe, ingredientIDs []string) error
	GetByID(ctx context.Context, recipeID string) (*models.Recipe, error)
	GetDetailsByID(ctx context.Context, recipeID string) (*models.RecipeDetails, error)
	GetAll(ctx context.Context) ([]models.RecipeDetails, error)
	Update(ctx context.Context, recipe *models.Recipe, ingredientIDs []string) error
	Delete(ctx context.Context, recipeID string) error
}

type LookupRepository interface {
	EnsureCategory(ctx context.Context, name string) (string, error)
	EnsureIngredient(ctx context.Context, name string) (*models.Ingredient, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetIngredients(ctx context.Context) ([]models.Ingredient, error)
}

type FavoriteRepository interface {
	Add(ctx context.Context, userID, recipeID string) (*models.Favorite, error)
	Remove(ctx context.Context, userID, recipeID string) error
	ListByUser(ctx context.Context, userID string) ([]models.RecipeDetails, error)
}

type StatsRepository interface {
	CountRows(ctx context.Context) (map[string]int, error)
}

type Repository struct {
	User     UserRepository
	Recipe   RecipeRepository
	Lookup   LookupRepository
	Favorite FavoriteRepository
	Stats    StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Recipe:   NewRecipeRepository(db),
		Lookup:   NewLookupRepository(db),
		Favorite: NewFavoriteRepository(db),
		Stats:    NewStatsRepository(db),
	}
}
