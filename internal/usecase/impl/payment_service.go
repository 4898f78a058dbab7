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

type paymentService struct {
	payments     repository.PaymentRepository
	feed         *listing.Feed[entity.Payment]
	dispatcher   *action.Dispatcher[entity.Payment]
	defaultLimit int
	logger       *slog.Logger
}

// NewPaymentService creates a new payment settlement service instance
func NewPaymentService(payments repository.PaymentRepository, cfg *config.Config, logger *slog.Logger) usecase.PaymentUsecase {
	feed := listing.NewFeed(payments.List, func(p entity.Payment) string { return p.ID }, logger)

	return &paymentService{
		payments:     payments,
		feed:         feed,
		dispatcher:   action.NewDispatcher(feed, logger),
		defaultLimit: cfg.Listing.DefaultLimit,
		logger:       logger,
	}
}

func (s *paymentService) List(ctx context.Context, query repository.ListQuery) (listing.Snapshot[entity.Payment], error) {
	if query.Limit == 0 {
		query.Limit = s.defaultLimit
	}

	return s.feed.Load(ctx, query)
}

func (s *paymentService) Get(ctx context.Context, id string) (*entity.Payment, error) {
	return s.payments.FindByID(ctx, id)
}

// SetStatus settles a pending payment as SUCCESS or FAILED
func (s *paymentService) SetStatus(ctx context.Context, id string, status entity.PaymentStatus) (*entity.Payment, error) {
	if !status.IsSettlement() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if current, known := s.feed.Find(id); known && !current.Status.IsPending() {
		return nil, errors.WithStack(domainerrors.ErrInvalidTransition)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	payment, err := s.dispatcher.Do(ctx, id, func(ctx context.Context) (*entity.Payment, error) {
		return s.payments.UpdateStatus(ctx, id, status)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("payment settled",
		slog.String("payment_id", id),
		slog.String("status", string(status)))

	return payment, nil
}
