package marketplace

import (
	"context"
	"log/slog"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
)

type dashboardRepository struct {
	client *Client
	logger *slog.Logger
}

// NewDashboardRepository creates the backend-backed dashboard repository.
func NewDashboardRepository(client *Client, logger *slog.Logger) repository.DashboardRepository {
	return &dashboardRepository{client: client, logger: logger}
}

func (r *dashboardRepository) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	raw, err := r.client.get(ctx, "/admin/dashboard/stats", nil)
	if err != nil {
		return nil, err
	}

	return decodeData[entity.DashboardStats](raw)
}
