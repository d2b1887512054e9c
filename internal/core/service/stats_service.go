package service

import (
	"context"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type statsService struct {
	repo ports.StatsRepository
}

func NewStatsService(repo ports.StatsRepository) ports.StatsService {
	return &statsService{repo: repo}
}

// AdminStats reads each figure independently; there is no consistency
// guarantee across them.
func (s *statsService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: users: %w", err)
	}
	items, err := s.repo.CountMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: menu items: %w", err)
	}
	orders, err := s.repo.CountPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: orders: %w", err)
	}
	revenue, err := s.repo.SumRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: revenue: %w", err)
	}

	return &domain.AdminStats{
		Users:        users,
		MenuItems:    items,
		Orders:       orders,
		TotalRevenue: revenue,
	}, nil
}

func (s *statsService) OrderStats(ctx context.Context) ([]domain.CategoryStats, error) {
	stats, err := s.repo.RevenueByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	if stats == nil {
		stats = []domain.CategoryStats{}
	}
	return stats, nil
}
