package impl

import (
	"context"
	"log/slog"

	"console/internal/action"
	deliverycontext "console/internal/delivery/context"
	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/repository"
	"console/internal/errors"
	"console/internal/listing"
	"console/internal/usecase"
)

type reviewService struct {
	reviews    repository.ReviewRepository
	feed       *listing.Feed[entity.Review]
	dispatcher *action.Dispatcher[entity.Review]
	logger     *slog.Logger
}

// NewReviewService creates a new review moderation service instance
func NewReviewService(reviews repository.ReviewRepository, logger *slog.Logger) usecase.ReviewUsecase {
	// The moderation queue is unpaginated upstream; the fetch ignores
	// the page selection.
	fetch := func(ctx context.Context, _ repository.ListQuery) (*repository.Page[entity.Review], error) {
		return reviews.ListModeration(ctx)
	}
	feed := listing.NewFeed(fetch, func(r entity.Review) string { return r.ID }, logger)

	return &reviewService{
		reviews:    reviews,
		feed:       feed,
		dispatcher: action.NewDispatcher(feed, logger),
		logger:     logger,
	}
}

func (s *reviewService) ListModeration(ctx context.Context) (listing.Snapshot[entity.Review], error) {
	return s.feed.Load(ctx, repository.ListQuery{Page: 1})
}

// Moderate approves or rejects a pending review
func (s *reviewService) Moderate(ctx context.Context, id string, status entity.ApprovalStatus) (*entity.Review, error) {
	if !status.IsDecision() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if current, known := s.feed.Find(id); known && !current.Status.IsPending() {
		return nil, errors.WithStack(domainerrors.ErrInvalidTransition)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	review, err := s.dispatcher.Do(ctx, id, func(ctx context.Context) (*entity.Review, error) {
		return s.reviews.Moderate(ctx, id, status)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("review moderated",
		slog.String("review_id", id),
		slog.String("status", string(status)))

	return review, nil
}
