package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList - сериализованный JSON-массив строк в TEXT-колонке
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации списка: %w", err)
	}
	return string(data), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("неподдерживаемый тип колонки для StringList: %T", src)
	}
}

type User struct {
	UserID           string         `json:"id" db:"user_id"`
	Username         string         `json:"username" db:"username"`
	Email            string         `json:"email" db:"email"`
	PasswordHash     string         `json:"-" db:"password_hash"`
	ProfileImagePath sql.NullString `json:"-" db:"profile_image_path"`
	IsAdmin          bool           `json:"isAdmin" db:"is_admin"`
	CreatedAt        time.Time      `json:"createdAt" db:"created_at"`
}

type Category struct {
	CategoryID string `json:"id" db:"category_id"`
	Name       string `json:"name" db:"name"`
}

type Ingredient struct {
	IngredientID string `json:"id" db:"ingredient_id"`
	Name         string `json:"name" db:"name"`
}

type Recipe struct {
	RecipeID    string     `json:"recipeId" db:"recipe_id"`
	UserID      string     `json:"userId" db:"user_id"`
	Name        string     `json:"name" db:"name"`
	CategoryID  string     `json:"categoryId" db:"category_id"`
	CookingTime *string    `json:"cookingTime" db:"cooking_time"`
	Calories    *int64     `json:"calories" db:"calories"`
	Steps       StringList `json:"instructions" db:"instructions"`
	Moods       StringList `json:"moods" db:"moods"`
	ImagePath   *string    `json:"imagePath" db:"image_path"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// RecipeDetails - рецепт вместе с присоединёнными данными для выдачи
type RecipeDetails struct {
	Recipe
	CategoryName    string `json:"categoryName" db:"category_name"`
	AuthorName      string `json:"authorName" db:"author_name"`
	IngredientNames string `json:"ingredientNames" db:"ingredient_names"`
}

type Favorite struct {
	UserID    string    `json:"userId" db:"user_id"`
	RecipeID  string    `json:"recipeId" db:"recipe_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
