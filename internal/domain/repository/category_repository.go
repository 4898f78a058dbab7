package repository

import (
	"context"

	"console/internal/domain/entity"
)

// CategoryInput carries the writable category fields.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// CategoryRepository manages the category tree.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, input CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id string, input CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
