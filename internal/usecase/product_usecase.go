package usecase

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/listing"
)

// ProductUsecase defines the interface for product moderation
type ProductUsecase interface {
	// List loads one page of products into the shared view
	List(ctx context.Context, query repository.ListQuery) (listing.Snapshot[entity.Product], error)

	// Get retrieves a single product by ID
	Get(ctx context.Context, id string) (*entity.Product, error)

	// Approve accepts a product pending review
	Approve(ctx context.Context, id string) (*entity.Product, error)

	// Reject declines a product pending review
	Reject(ctx context.Context, id string) (*entity.Product, error)

	// Delete removes a product from the catalogue
	Delete(ctx context.Context, id string) error
}
