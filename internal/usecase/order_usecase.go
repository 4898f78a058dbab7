package usecase

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/listing"
)

// OrderUsecase defines the read-only interface for order oversight
type OrderUsecase interface {
	// List loads one page of orders into the shared view
	List(ctx context.Context, query repository.ListQuery) (listing.Snapshot[entity.Order], error)

	// Get retrieves a single order by ID
	Get(ctx context.Context, id string) (*entity.Order, error)
}
