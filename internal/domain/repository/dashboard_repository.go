package repository

import (
	"context"

	"console/internal/domain/entity"
)

// DashboardRepository fetches the aggregate statistics snapshot.
type DashboardRepository interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}
