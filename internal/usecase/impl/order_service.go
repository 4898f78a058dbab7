package impl

import (
	"context"
	"log/slog"

	"console/config"
	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/listing"
	"console/internal/usecase"
)

type orderService struct {
	orders       repository.OrderRepository
	feed         *listing.Feed[entity.Order]
	defaultLimit int
	logger       *slog.Logger
}

// NewOrderService creates a new order oversight service instance
func NewOrderService(orders repository.OrderRepository, cfg *config.Config, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orders:       orders,
		feed:         listing.NewFeed(orders.List, func(o entity.Order) string { return o.ID }, logger),
		defaultLimit: cfg.Listing.DefaultLimit,
		logger:       logger,
	}
}

func (s *orderService) List(ctx context.Context, query repository.ListQuery) (listing.Snapshot[entity.Order], error) {
	if query.Limit == 0 {
		query.Limit = s.defaultLimit
	}

	return s.feed.Load(ctx, query)
}

func (s *orderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	return s.orders.FindByID(ctx, id)
}
