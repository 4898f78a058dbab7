package repository

import (
	"context"

	"console/internal/domain/entity"
)

// ProductRepository reads products, decides approvals and hard deletes.
type ProductRepository interface {
	List(ctx context.Context, query ListQuery) (*Page[entity.Product], error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	Approve(ctx context.Context, id string, status entity.ApprovalStatus) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
