package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound - запись не найдена
	ErrNotFound = errors.New("запись не найдена")
	// ErrAlreadyExists - нарушение уникальности
	ErrAlreadyExists = errors.New("запись уже существует")
)

// isUniqueViolation проверяет код 23505 (unique_violation) от Postgres
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
