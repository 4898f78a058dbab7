package repository

import (
	"context"

	"console/internal/domain/entity"
)

// OrderRepository is read-only; the console never mutates orders.
type OrderRepository interface {
	List(ctx context.Context, query ListQuery) (*Page[entity.Order], error)
	FindByID(ctx context.Context, id string) (*entity.Order, error)
}
