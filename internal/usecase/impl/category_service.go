package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "console/internal/delivery/context"
	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/repository"
	"console/internal/errors"
	"console/internal/usecase"
)

type categoryService struct {
	categories repository.CategoryRepository
	logger     *slog.Logger
}

// NewCategoryService creates a new category management service instance
func NewCategoryService(categories repository.CategoryRepository, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{categories: categories, logger: logger}
}

func (s *categoryService) List(ctx context.Context) ([]entity.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) Create(ctx context.Context, input repository.CategoryInput) (*entity.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	category, err := s.categories.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.Info("category created", slog.String("category_id", category.ID))

	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, input repository.CategoryInput) (*entity.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	return s.categories.Update(ctx, id, input)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}
