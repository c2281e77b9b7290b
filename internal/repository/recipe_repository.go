package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pickmydish/internal/models"
)

type recipeRepository struct {
	db *sqlx.DB
}

func NewRecipeRepository(db *sqlx.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// detailsQuery присоединяет категорию, автора и агрегированный список ингредиентов
const detailsQuery = `
	SELECT r.recipe_id, r.user_id, r.name, r.category_id, r.cooking_time, r.calories,
	       r.instructions, r.moods, r.image_path, r.created_at, r.updated_at,
	       COALESCE(c.name, '') AS category_name,
	       COALESCE(u.username, '') AS author_name,
	       COALESCE(string_agg(i.name, ', ' ORDER BY i.name), '') AS ingredient_names
	FROM recipes r
	LEFT JOIN categories c ON c.category_id = r.category_id
	LEFT JOIN users u ON u.user_id = r.user_id
	LEFT JOIN recipe_ingredients ri ON ri.recipe_id = r.recipe_id
	LEFT JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
`

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe, ingredientIDs []string) error {
	if recipe.RecipeID == "" {
		recipe.RecipeID = uuid.New().String()
	}

	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO recipes
		(recipe_id, user_id, name, category_id, cooking_time, calories, instructions, moods, image_path, created_at, updated_at)
		VALUES
		(:recipe_id, :user_id, :name, :category_id, :cooking_time, :calories, :instructions, :moods, :image_path, :created_at, :updated_at)
	`

	_, err = tx.NamedExecContext(ctx, query, recipe)
	if err != nil {
		return fmt.Errorf("ошибка при создании рецепта: %w", err)
	}

	if err := insertRecipeIngredients(ctx, tx, recipe.RecipeID, ingredientIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, recipeID string) (*models.Recipe, error) {
	query := `SELECT * FROM recipes WHERE recipe_id = $1`

	var recipe models.Recipe
	err := r.db.GetContext(ctx, &recipe, query, recipeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("рецепт с ID %s: %w", recipeID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении рецепта: %w", err)
	}

	return &recipe, nil
}

func (r *recipeRepository) GetDetailsByID(ctx context.Context, recipeID string) (*models.RecipeDetails, error) {
	query := detailsQuery + `
	WHERE r.recipe_id = $1
	GROUP BY r.recipe_id, c.name, u.username
	`

	var details models.RecipeDetails
	err := r.db.GetContext(ctx, &details, query, recipeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("рецепт с ID %s: %w", recipeID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении рецепта: %w", err)
	}

	return &details, nil
}

func (r *recipeRepository) GetAll(ctx context.Context) ([]models.RecipeDetails, error) {
	query := detailsQuery + `
	GROUP BY r.recipe_id, c.name, u.username
	ORDER BY r.created_at DESC
	`

	var recipes []models.RecipeDetails
	err := r.db.SelectContext(ctx, &recipes, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении рецептов: %w", err)
	}

	return recipes, nil
}

func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe, ingredientIDs []string) error {
	recipe.UpdatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE recipes SET
			name = :name,
			category_id = :category_id,
			cooking_time = :cooking_time,
			calories = :calories,
			instructions = :instructions,
			moods = :moods,
			updated_at = :updated_at
		WHERE recipe_id = :recipe_id
	`

	result, err := tx.NamedExecContext(ctx, query, recipe)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении рецепта: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("рецепт с ID %s: %w", recipe.RecipeID, ErrNotFound)
	}

	// пустой список ингредиентов означает "без изменений", непустой заменяет связи целиком
	if len(ingredientIDs) > 0 {
		_, err = tx.ExecContext(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipe.RecipeID)
		if err != nil {
			return fmt.Errorf("ошибка при удалении связей с ингредиентами: %w", err)
		}

		if err := insertRecipeIngredients(ctx, tx, recipe.RecipeID, ingredientIDs); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *recipeRepository) Delete(ctx context.Context, recipeID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	// сначала дочерние строки, затем сам рецепт
	_, err = tx.ExecContext(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении связей с ингредиентами: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM user_favorites WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении из избранного: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM recipes WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении рецепта: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("рецепт с ID %s: %w", recipeID, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func insertRecipeIngredients(ctx context.Context, tx *sqlx.Tx, recipeID string, ingredientIDs []string) error {
	query := `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id)
		VALUES ($1, $2)
		ON CONFLICT (recipe_id, ingredient_id) DO NOTHING
	`

	for _, ingredientID := range ingredientIDs {
		_, err := tx.ExecContext(ctx, query, recipeID, ingredientID)
		if err != nil {
			return fmt.Errorf("ошибка при добавлении ингредиента %s: %w", ingredientID, err)
		}
	}

	return nil
}
