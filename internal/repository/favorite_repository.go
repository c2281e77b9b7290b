package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"pickmydish/internal/models"
)

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, recipeID string) (*models.Favorite, error) {
	favorite := &models.Favorite{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}

	query := `
		INSERT INTO user_favorites (user_id, recipe_id, created_at)
		VALUES (:user_id, :recipe_id, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, favorite)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("рецепт %s уже в избранном: %w", recipeID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("ошибка при добавлении в избранное: %w", err)
	}

	return favorite, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, recipeID string) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND recipe_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, recipeID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении из избранного: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("рецепт %s не в избранном: %w", recipeID, ErrNotFound)
	}

	return nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.RecipeDetails, error) {
	query := `
		SELECT r.recipe_id, r.user_id, r.name, r.category_id, r.cooking_time, r.calories,
		       r.instructions, r.moods, r.image_path, r.created_at, r.updated_at,
		       COALESCE(c.name, '') AS category_name,
		       COALESCE(u.username, '') AS author_name,
		       COALESCE(string_agg(i.name, ', ' ORDER BY i.name), '') AS ingredient_names
		FROM user_favorites f
		JOIN recipes r ON r.recipe_id = f.recipe_id
		LEFT JOIN categories c ON c.category_id = r.category_id
		LEFT JOIN users u ON u.user_id = r.user_id
		LEFT JOIN recipe_ingredients ri ON ri.recipe_id = r.recipe_id
		LEFT JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
		WHERE f.user_id = $1
		GROUP BY r.recipe_id, c.name, u.username, f.created_at
		ORDER BY f.created_at DESC
	`

	var recipes []models.RecipeDetails
	err := r.db.SelectContext(ctx, &recipes, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении избранного: %w", err)
	}

	return recipes, nil
}
