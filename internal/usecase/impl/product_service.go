package impl

import (
	"context"
	"log/slog"

	"console/config"
	"console/internal/action"
	deliverycontext "console/internal/delivery/context"
	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/repository"
	"console/internal/errors"
	"console/internal/listing"
	"console/internal/usecase"
)

type productService struct {
	products     repository.ProductRepository
	feed         *listing.Feed[entity.Product]
	dispatcher   *action.Dispatcher[entity.Product]
	defaultLimit int
	logger       *slog.Logger
}

// NewProductService creates a new product moderation service instance
func NewProductService(products repository.ProductRepository, cfg *config.Config, logger *slog.Logger) usecase.ProductUsecase {
	feed := listing.NewFeed(products.List, func(p entity.Product) string { return p.ID }, logger)

	return &productService{
		products:     products,
		feed:         feed,
		dispatcher:   action.NewDispatcher(feed, logger),
		defaultLimit: cfg.Listing.DefaultLimit,
		logger:       logger,
	}
}

func (s *productService) List(ctx context.Context, query repository.ListQuery) (listing.Snapshot[entity.Product], error) {
	if query.Limit == 0 {
		query.Limit = s.defaultLimit
	}

	return s.feed.Load(ctx, query)
}

func (s *productService) Get(ctx context.Context, id string) (*entity.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Approve accepts a product pending review
func (s *productService) Approve(ctx context.Context, id string) (*entity.Product, error) {
	return s.decide(ctx, id, entity.ApprovalApproved)
}

// Reject declines a product pending review
func (s *productService) Reject(ctx context.Context, id string) (*entity.Product, error) {
	return s.decide(ctx, id, entity.ApprovalRejected)
}

func (s *productService) decide(ctx context.Context, id string, status entity.ApprovalStatus) (*entity.Product, error) {
	if current, known := s.feed.Find(id); known && !current.ApprovalStatus.IsPending() {
		return nil, errors.WithStack(domainerrors.ErrInvalidTransition)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	product, err := s.dispatcher.Do(ctx, id, func(ctx context.Context) (*entity.Product, error) {
		return s.products.Approve(ctx, id, status)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("product moderation decided",
		slog.String("product_id", id),
		slog.String("status", string(status)))

	return product, nil
}

// Delete removes a product from the catalogue
func (s *productService) Delete(ctx context.Context, id string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if err := s.dispatcher.DoRemove(ctx, id, func(ctx context.Context) error {
		return s.products.Delete(ctx, id)
	}); err != nil {
		return err
	}

	logger.Info("product deleted", slog.String("product_id", id))

	return nil
}
