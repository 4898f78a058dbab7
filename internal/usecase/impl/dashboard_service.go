package impl

import (
	"context"
	"log/slog"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/usecase"
)

type dashboardService struct {
	dashboard repository.DashboardRepository
	logger    *slog.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(dashboard repository.DashboardRepository, logger *slog.Logger) usecase.DashboardUsecase {
	return &dashboardService{dashboard: dashboard, logger: logger}
}

func (s *dashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	return s.dashboard.Stats(ctx)
}
