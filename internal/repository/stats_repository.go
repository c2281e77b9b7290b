package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

var statsTables = []string{
	"users",
	"categories",
	"ingredients",
	"recipes",
	"recipe_ingredients",
	"user_favorites",
}

func (r *statsRepository) CountRows(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(statsTables))

	for _, table := range statsTables {
		var count int

		err := r.db.GetContext(ctx, &count, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table))
		if err != nil {
			return nil, fmt.Errorf("ошибка при подсчёте строк таблицы %s: %w", table, err)
		}

		counts[table] = count
	}

	return counts, nil
}
