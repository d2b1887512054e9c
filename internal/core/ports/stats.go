package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// StatsRepository runs the read-only aggregations behind the admin dashboard.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountMenuItems(ctx context.Context) (int64, error)
	CountPayments(ctx context.Context) (int64, error)
	SumRevenue(ctx context.Context) (float64, error)
	RevenueByCategory(ctx context.Context) ([]domain.CategoryStats, error)
}

// StatsService computes admin analytics snapshots.
type StatsService interface {
	AdminStats(ctx context.Context) (*domain.AdminStats, error)
	OrderStats(ctx context.Context) ([]domain.CategoryStats, error)
}
