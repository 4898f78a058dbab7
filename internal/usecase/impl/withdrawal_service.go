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

type withdrawalService struct {
	withdrawals  repository.WithdrawalRepository
	feed         *listing.Feed[entity.Withdrawal]
	dispatcher   *action.Dispatcher[entity.Withdrawal]
	defaultLimit int
	logger       *slog.Logger
}

// NewWithdrawalService creates a new payout decision service instance
func NewWithdrawalService(withdrawals repository.WithdrawalRepository, cfg *config.Config, logger *slog.Logger) usecase.WithdrawalUsecase {
	feed := listing.NewFeed(withdrawals.List, func(w entity.Withdrawal) string { return w.ID }, logger)

	return &withdrawalService{
		withdrawals:  withdrawals,
		feed:         feed,
		dispatcher:   action.NewDispatcher(feed, logger),
		defaultLimit: cfg.Listing.DefaultLimit,
		logger:       logger,
	}
}

func (s *withdrawalService) List(ctx context.Context, query repository.ListQuery) (listing.Snapshot[entity.Withdrawal], error) {
	if query.Limit == 0 {
		query.Limit = s.defaultLimit
	}

	return s.feed.Load(ctx, query)
}

// Decide approves or rejects a pending withdrawal request
func (s *withdrawalService) Decide(ctx context.Context, id string, status entity.ApprovalStatus) (*entity.Withdrawal, error) {
	if !status.IsDecision() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if current, known := s.feed.Find(id); known && !current.Status.IsPending() {
		return nil, errors.WithStack(domainerrors.ErrInvalidTransition)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	withdrawal, err := s.dispatcher.Do(ctx, id, func(ctx context.Context) (*entity.Withdrawal, error) {
		return s.withdrawals.UpdateStatus(ctx, id, status)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("withdrawal decided",
		slog.String("withdrawal_id", id),
		slog.String("status", string(status)))

	return withdrawal, nil
}
