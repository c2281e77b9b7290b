package service

import (
	"context"

	"pickmydish/internal/repository"
)

type StatsService interface {
	GetRowCounts(ctx context.Context) (map[string]int, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetRowCounts(ctx context.Context) (map[string]int, error) {
	return s.statsRepo.CountRows(ctx)
}
