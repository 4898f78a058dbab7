package impl

import (
	"context"
	"log/slog"
	"strings"

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

type userService struct {
	users        repository.UserRepository
	deletions    repository.DeletionRepository
	feed         *listing.Feed[entity.User]
	dispatcher   *action.Dispatcher[entity.User]
	defaultLimit int
	logger       *slog.Logger
}

// NewUserService creates a new user administration service instance
func NewUserService(
	users repository.UserRepository,
	deletions repository.DeletionRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UserUsecase {
	feed := listing.NewFeed(users.List, func(u entity.User) string { return u.ID }, logger)

	return &userService{
		users:        users,
		deletions:    deletions,
		feed:         feed,
		dispatcher:   action.NewDispatcher(feed, logger),
		defaultLimit: cfg.Listing.DefaultLimit,
		logger:       logger,
	}
}

func (s *userService) List(ctx context.Context, query repository.ListQuery) (listing.Snapshot[entity.User], error) {
	if query.Limit == 0 {
		query.Limit = s.defaultLimit
	}

	return s.feed.Load(ctx, query)
}

func (s *userService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.users.FindByID(ctx, id)
}

// Suspend sets the user's status to SUSPENDED
func (s *userService) Suspend(ctx context.Context, id string) (*entity.User, error) {
	return s.setStatus(ctx, id, entity.UserSuspended)
}

// Activate sets the user's status to ACTIVE
func (s *userService) Activate(ctx context.Context, id string) (*entity.User, error) {
	return s.setStatus(ctx, id, entity.UserActive)
}

func (s *userService) setStatus(ctx context.Context, id string, status entity.UserStatus) (*entity.User, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	user, err := s.dispatcher.Do(ctx, id, func(ctx context.Context) (*entity.User, error) {
		return s.users.UpdateStatus(ctx, id, status)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("user status updated",
		slog.String("user_id", id),
		slog.String("status", string(status)))

	return user, nil
}

// RequestDeletion files an account deletion request for the user
func (s *userService) RequestDeletion(ctx context.Context, id, reason string) (*entity.DeletionRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errors.WithStack(domainerrors.ErrReasonRequired)
	}

	var request *entity.DeletionRequest
	_, err := s.dispatcher.Do(ctx, id, func(ctx context.Context) (*entity.User, error) {
		submitted, err := s.deletions.Submit(ctx, id, entity.AccountTypeUser, reason)
		if err != nil {
			return nil, err
		}
		request = submitted

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return request, nil
}
