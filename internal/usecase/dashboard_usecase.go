package usecase

import (
	"context"

	"console/internal/domain/entity"
)

// DashboardUsecase defines the interface for the overview dashboard
type DashboardUsecase interface {
	// Stats retrieves the platform-wide counters
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}
