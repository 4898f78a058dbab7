package usecase

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
)

// CategoryUsecase defines the interface for catalogue category management
type CategoryUsecase interface {
	// List retrieves the full category tree
	List(ctx context.Context) ([]entity.Category, error)

	// Create adds a category. The name must be non-empty.
	Create(ctx context.Context, input repository.CategoryInput) (*entity.Category, error)

	// Update rewrites a category. The name must be non-empty.
	Update(ctx context.Context, id string, input repository.CategoryInput) (*entity.Category, error)

	// Delete removes a category
	Delete(ctx context.Context, id string) error
}
