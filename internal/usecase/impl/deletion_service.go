package impl

import (
	"context"
	"log/slog"
	"strings"

	"console/internal/action"
	deliverycontext "console/internal/delivery/context"
	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/repository"
	"console/internal/errors"
	"console/internal/listing"
	"console/internal/usecase"
)

type deletionService struct {
	deletions  repository.DeletionRepository
	feed       *listing.Feed[entity.DeletionRequest]
	dispatcher *action.Dispatcher[entity.DeletionRequest]
	logger     *slog.Logger
}

// NewDeletionService creates a new deletion request service instance
func NewDeletionService(deletions repository.DeletionRepository, logger *slog.Logger) usecase.DeletionUsecase {
	// The deletion queue is unpaginated upstream; the fetch wraps the
	// full listing into a single page.
	fetch := func(ctx context.Context, _ repository.ListQuery) (*repository.Page[entity.DeletionRequest], error) {
		items, err := deletions.List(ctx)
		if err != nil {
			return nil, err
		}

		return &repository.Page[entity.DeletionRequest]{
			Items:      items,
			Total:      len(items),
			Page:       1,
			TotalPages: 1,
		}, nil
	}
	feed := listing.NewFeed(fetch, func(r entity.DeletionRequest) string { return r.ID }, logger)

	return &deletionService{
		deletions:  deletions,
		feed:       feed,
		dispatcher: action.NewDispatcher(feed, logger),
		logger:     logger,
	}
}

func (s *deletionService) List(ctx context.Context) (listing.Snapshot[entity.DeletionRequest], error) {
	return s.feed.Load(ctx, repository.ListQuery{Page: 1})
}

// Decide approves or rejects a pending deletion request
func (s *deletionService) Decide(ctx context.Context, id string, decision entity.DeletionAction, decisionReason string) (*entity.DeletionRequest, error) {
	if !decision.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if decision == entity.DeletionActionReject && strings.TrimSpace(decisionReason) == "" {
		return nil, errors.WithStack(domainerrors.ErrReasonRequired)
	}
	if current, known := s.feed.Find(id); known && !current.Status.IsPending() {
		return nil, errors.WithStack(domainerrors.ErrInvalidTransition)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	request, err := s.dispatcher.Do(ctx, id, func(ctx context.Context) (*entity.DeletionRequest, error) {
		return s.deletions.Decide(ctx, id, decision, decisionReason)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("deletion request decided",
		slog.String("request_id", id),
		slog.String("action", string(decision)))

	return request, nil
}
