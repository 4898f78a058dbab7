package usecase

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/listing"
)

// UserUsecase defines the interface for customer account administration
type UserUsecase interface {
	// List loads one page of users into the shared view
	List(ctx context.Context, query repository.ListQuery) (listing.Snapshot[entity.User], error)

	// Get retrieves a single user by ID
	Get(ctx context.Context, id string) (*entity.User, error)

	// Suspend sets the user's status to SUSPENDED
	Suspend(ctx context.Context, id string) (*entity.User, error)

	// Activate sets the user's status to ACTIVE
	Activate(ctx context.Context, id string) (*entity.User, error)

	// RequestDeletion files an account deletion request for the user.
	// The reason must be non-empty.
	RequestDeletion(ctx context.Context, id, reason string) (*entity.DeletionRequest, error)
}
