package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pickmydish/internal/models"
)

type lookupRepository struct {
	db *sqlx.DB
}

func NewLookupRepository(db *sqlx.DB) LookupRepository {
	return &lookupRepository{db: db}
}

// EnsureCategory возвращает id категории по имени, создавая её при отсутствии.
// Гонка двух конкурентных вставок одного имени разрешается повторным SELECT.
func (r *lookupRepository) EnsureCategory(ctx context.Context, name string) (string, error) {
	var categoryID string

	insertQuery := `
		INSERT INTO categories (category_id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
		RETURNING category_id
	`

	err := r.db.GetContext(ctx, &categoryID, insertQuery, uuid.New().String(), name)
	if err == nil {
		return categoryID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("ошибка при создании категории: %w", err)
	}

	// вставка не прошла из-за конфликта имени, перечитываем существующую строку
	err = r.db.GetContext(ctx, &categoryID, `SELECT category_id FROM categories WHERE name = $1`, name)
	if err != nil {
		return "", fmt.Errorf("ошибка при получении категории %s: %w", name, err)
	}

	return categoryID, nil
}

func (r *lookupRepository) EnsureIngredient(ctx context.Context, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient

	insertQuery := `
		INSERT INTO ingredients (ingredient_id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
		RETURNING ingredient_id, name
	`

	err := r.db.GetContext(ctx, &ingredient, insertQuery, uuid.New().String(), name)
	if err == nil {
		return &ingredient, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ошибка при создании ингредиента: %w", err)
	}

	err = r.db.GetContext(ctx, &ingredient, `SELECT ingredient_id, name FROM ingredients WHERE name = $1`, name)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ингредиента %s: %w", name, err)
	}

	return &ingredient, nil
}

func (r *lookupRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	query := `SELECT category_id, name FROM categories ORDER BY name`

	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении категорий: %w", err)
	}

	return categories, nil
}

func (r *lookupRepository) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient

	query := `SELECT ingredient_id, name FROM ingredients ORDER BY name`

	err := r.db.SelectContext(ctx, &ingredients, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ингредиентов: %w", err)
	}

	return ingredients, nil
}
